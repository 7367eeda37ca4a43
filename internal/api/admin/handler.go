package admin

import (
	"net/http"

	"remcua-backend/config"
	"remcua-backend/database"
	"remcua-backend/internal/domain/catalog"
	"remcua-backend/internal/domain/contacts"
	"remcua-backend/internal/domain/content"
	"remcua-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type DashboardStats struct {
	TotalCurtains   int `json:"total_curtains"`
	TotalCategories int `json:"total_categories"`
	TotalProjects   int `json:"total_projects"`
	TotalPosts      int `json:"total_posts"`
	TotalContacts   int `json:"total_contacts"`
	NewContacts     int `json:"new_contacts"`

	// Display-only figures for the storefront, overridable via env.
	YearsExperience   int `json:"years_experience"`
	CompletedProjects int `json:"completed_projects"`
	HappyCustomers    int `json:"happy_customers"`
}

// GET /admin/dashboard
func AdminDashboard(c *gin.Context) {
	var stats DashboardStats

	var n int64
	database.DB.Model(&catalog.Curtain{}).Count(&n)
	stats.TotalCurtains = int(n)
	database.DB.Model(&catalog.Category{}).Count(&n)
	stats.TotalCategories = int(n)
	database.DB.Model(&content.Project{}).Count(&n)
	stats.TotalProjects = int(n)
	database.DB.Model(&content.Post{}).Count(&n)
	stats.TotalPosts = int(n)
	database.DB.Model(&contacts.Contact{}).Count(&n)
	stats.TotalContacts = int(n)
	database.DB.Model(&contacts.Contact{}).Where("status = ?", contacts.StatusNew).Count(&n)
	stats.NewContacts = int(n)

	stats.YearsExperience = config.STATS_YEARS_EXPERIENCE
	stats.CompletedProjects = config.STATS_COMPLETED_PROJECTS
	stats.HappyCustomers = config.STATS_HAPPY_CUSTOMERS

	c.JSON(http.StatusOK, stats)
}

type AdminUser struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AuthProvider string `json:"auth_provider"`
}

// GET /admin/users
func ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("created_at ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]AdminUser, 0, len(list))
	for _, u := range list {
		out = append(out, AdminUser{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			Role:         u.Role,
			AuthProvider: u.AuthProvider,
		})
	}

	c.JSON(http.StatusOK, out)
}

// PUT /admin/users/:id/role
func UpdateUserRole(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role != users.RoleAdmin && req.Role != users.RoleStaff {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be admin or staff"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := database.DB.Model(&user).Update("role", req.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}
