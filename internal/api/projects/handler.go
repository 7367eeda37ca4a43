package projects

import (
	"net/http"

	"remcua-backend/database"
	"remcua-backend/internal/domain/content"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectRequest struct {
	Title            string `json:"title" binding:"required"`
	Location         string `json:"location"`
	Type             string `json:"type" binding:"required"`
	ShortDescription string `json:"shortDescription"`
	DetailedContent  string `json:"detailedContent"`
	Thumbnail        string `json:"thumbnail"`
	Featured         bool   `json:"featured"`
	Published        bool   `json:"published"`
}

// GET /projects
// ?published=true and ?featured=true narrow for the storefront.
func ListProjects(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if c.Query("published") == "true" {
		q = q.Where("published = ?", true)
	}
	if c.Query("featured") == "true" {
		q = q.Where("featured = ?", true)
	}

	var projects []content.Project
	if err := q.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GET /projects/type/:type
func ListProjectsByType(c *gin.Context) {
	var projects []content.Project
	err := database.DB.
		Where("type = ?", c.Param("type")).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GET /projects/:id
func GetProject(c *gin.Context) {
	var project content.Project
	if err := database.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// POST /projects
func CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project content.Project
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := content.EnsureUniqueSlug(tx, "projects", content.MakeSlug(req.Title), "")
		if err != nil {
			return err
		}

		project = content.Project{
			Title:            req.Title,
			Slug:             slug,
			Location:         req.Location,
			Type:             req.Type,
			ShortDescription: req.ShortDescription,
			DetailedContent:  req.DetailedContent,
			Thumbnail:        req.Thumbnail,
			Featured:         req.Featured,
			Published:        req.Published,
		}
		return tx.Create(&project).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": project.ID, "slug": project.Slug})
}

// PUT /projects/:id
func UpdateProject(c *gin.Context) {
	id := c.Param("id")

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project content.Project
	if err := database.DB.First(&project, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.Title != project.Title {
			slug, err := content.EnsureUniqueSlug(tx, "projects", content.MakeSlug(req.Title), project.ID)
			if err != nil {
				return err
			}
			project.Slug = slug
		}

		project.Title = req.Title
		project.Location = req.Location
		project.Type = req.Type
		project.ShortDescription = req.ShortDescription
		project.DetailedContent = req.DetailedContent
		project.Thumbnail = req.Thumbnail
		project.Featured = req.Featured
		project.Published = req.Published

		// The legacy gallery column is never written from the API.
		return tx.Save(&project).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
}

// DELETE /projects/:id
func DeleteProject(c *gin.Context) {
	res := database.DB.Delete(&content.Project{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
