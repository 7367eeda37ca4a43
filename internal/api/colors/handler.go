package colors

import (
	"net/http"

	"remcua-backend/database"
	"remcua-backend/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

type ColorRequest struct {
	Name    string `json:"name" binding:"required"`
	HexCode string `json:"hexCode" binding:"required"`
}

// GET /colors
func ListColors(c *gin.Context) {
	var colors []catalog.Color
	if err := database.DB.Order("name ASC").Find(&colors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load colors"})
		return
	}
	c.JSON(http.StatusOK, colors)
}

// GET /colors/:id
func GetColor(c *gin.Context) {
	var color catalog.Color
	if err := database.DB.First(&color, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Color not found"})
		return
	}
	c.JSON(http.StatusOK, color)
}

// POST /colors
func CreateColor(c *gin.Context) {
	var req ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	color := catalog.Color{Name: req.Name, HexCode: req.HexCode}
	if err := database.DB.Create(&color).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create color"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": color.ID})
}

// PUT /colors/:id
func UpdateColor(c *gin.Context) {
	var req ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var color catalog.Color
	if err := database.DB.First(&color, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Color not found"})
		return
	}

	color.Name = req.Name
	color.HexCode = req.HexCode
	if err := database.DB.Save(&color).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update color"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Color updated"})
}

// DELETE /colors/:id
func DeleteColor(c *gin.Context) {
	res := database.DB.Delete(&catalog.Color{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete color"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Color not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Color deleted"})
}
