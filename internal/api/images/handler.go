package images

import (
	"net/http"

	"remcua-backend/database"
	"remcua-backend/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ImageRequest struct {
	URL    string `json:"url" binding:"required"`
	IsMain bool   `json:"isMain"`
}

// GET /images/curtain/:curtainId
func ListCurtainImages(c *gin.Context) {
	var images []catalog.CurtainImage
	err := database.DB.
		Where("curtain_id = ?", c.Param("curtainId")).
		Order("is_main DESC, created_at ASC").
		Find(&images).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// POST /images/curtain/:curtainId
// Marking an image as main demotes the previous main image.
func AddCurtainImage(c *gin.Context) {
	curtainID := c.Param("curtainId")

	var req ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var curtain catalog.Curtain
	if err := database.DB.First(&curtain, "id = ?", curtainID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curtain not found"})
		return
	}

	image := catalog.CurtainImage{
		CurtainID: curtainID,
		URL:       req.URL,
		IsMain:    req.IsMain,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsMain {
			if err := tx.Model(&catalog.CurtainImage{}).
				Where("curtain_id = ? AND is_main = ?", curtainID, true).
				Update("is_main", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&image).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": image.ID})
}

// DELETE /images/:id
func DeleteImage(c *gin.Context) {
	res := database.DB.Delete(&catalog.CurtainImage{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
