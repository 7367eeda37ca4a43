package banners

import (
	"net/http"

	"remcua-backend/database"
	"remcua-backend/internal/domain/content"

	"github.com/gin-gonic/gin"
)

type BannerRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"required"`
	Link        string `json:"link"`
	IsActive    *bool  `json:"isActive"`
	Order       int    `json:"order"`
}

// GET /banners
// ?active=true narrows to the slides the storefront actually shows.
func ListBanners(c *gin.Context) {
	q := database.DB.Order("display_order ASC, created_at ASC")
	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var banners []content.Banner
	if err := q.Find(&banners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load banners"})
		return
	}
	c.JSON(http.StatusOK, banners)
}

// GET /banners/:id
func GetBanner(c *gin.Context) {
	var banner content.Banner
	if err := database.DB.First(&banner, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}
	c.JSON(http.StatusOK, banner)
}

// POST /banners
func CreateBanner(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	banner := content.Banner{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
		IsActive:    isActive,
		Order:       req.Order,
	}
	if err := database.DB.Create(&banner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": banner.ID})
}

// PUT /banners/:id
func UpdateBanner(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var banner content.Banner
	if err := database.DB.First(&banner, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}

	banner.Title = req.Title
	banner.Description = req.Description
	banner.Image = req.Image
	banner.Link = req.Link
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	banner.Order = req.Order

	if err := database.DB.Save(&banner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner updated"})
}

// DELETE /banners/:id
func DeleteBanner(c *gin.Context) {
	res := database.DB.Delete(&content.Banner{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}
