package curtains

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"remcua-backend/database"
	"remcua-backend/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// priceWindow turns the minPrice/maxPrice query params into a filter window.
// Either bound may stand alone: a lone minPrice is open-ended upward, a lone
// maxPrice starts at zero. Both empty means no price filter.
func priceWindow(minRaw, maxRaw string) (*catalog.PriceWindow, error) {
	if minRaw == "" && maxRaw == "" {
		return nil, nil
	}

	min := 0.0
	max := math.MaxFloat64
	var err error
	if minRaw != "" {
		if min, err = strconv.ParseFloat(minRaw, 64); err != nil {
			return nil, errors.New("Invalid minPrice")
		}
	}
	if maxRaw != "" {
		if max, err = strconv.ParseFloat(maxRaw, 64); err != nil {
			return nil, errors.New("Invalid maxPrice")
		}
	}
	return &catalog.PriceWindow{Min: min, Max: max}, nil
}

// ------------------------------
// GET /curtains
// ------------------------------
// The storefront filter is applied in memory over the full list: category,
// color names, price window, free-text search. Pagination happens after
// filtering.
func ListCurtains(c *gin.Context) {
	var curtains []catalog.Curtain
	err := database.DB.
		Preload("Category").
		Preload("Color").
		Order("created_at DESC").
		Find(&curtains).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load curtains"})
		return
	}

	opt := catalog.FilterOptions{
		CategoryID: c.Query("category"),
		Search:     c.Query("search"),
	}
	if raw := c.Query("colors"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				opt.Colors = append(opt.Colors, name)
			}
		}
	}
	window, err := priceWindow(c.Query("minPrice"), c.Query("maxPrice"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	opt.Price = window

	filtered := catalog.Filter(curtains, opt)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	total := len(filtered)
	if page < 1 {
		page = 1
	}

	totalPages := 1
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
		if totalPages == 0 {
			totalPages = 1
		}
		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}
		filtered = filtered[start:end]
	}

	c.JSON(http.StatusOK, ListResponse{
		Curtains:   filtered,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	})
}

// ------------------------------
// GET /curtains/:id
// ------------------------------
func GetCurtain(c *gin.Context) {
	id := c.Param("id")

	var curtain catalog.Curtain
	err := database.DB.
		Preload("Category").
		Preload("Color").
		Preload("Images").
		First(&curtain, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curtain not found"})
		return
	}

	c.JSON(http.StatusOK, curtain)
}

// ------------------------------
// POST /curtains
// ------------------------------
func CreateCurtain(c *gin.Context) {
	var req CurtainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Price.KnownType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown price type"})
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	curtain := catalog.Curtain{
		Name:             req.Name,
		Description:      req.Description,
		Material:         req.Material,
		CategoryID:       req.CategoryID,
		ColorID:          req.ColorID,
		Price:            req.Price,
		MainImage:        req.MainImage,
		AdditionalImages: req.AdditionalImages,
		InStock:          inStock,
		Size:             req.Size,
	}

	if err := database.DB.Create(&curtain).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create curtain"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": curtain.ID})
}

// ------------------------------
// PUT /curtains/:id
// ------------------------------
func UpdateCurtain(c *gin.Context) {
	id := c.Param("id")

	var req CurtainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Price.KnownType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown price type"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var curtain catalog.Curtain
		if err := tx.First(&curtain, "id = ?", id).Error; err != nil {
			return err
		}

		curtain.Name = req.Name
		curtain.Description = req.Description
		curtain.Material = req.Material
		curtain.CategoryID = req.CategoryID
		curtain.ColorID = req.ColorID
		curtain.Price = req.Price
		curtain.MainImage = req.MainImage
		curtain.AdditionalImages = req.AdditionalImages
		if req.InStock != nil {
			curtain.InStock = *req.InStock
		}
		curtain.Size = req.Size

		return tx.Save(&curtain).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curtain not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update curtain"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Curtain updated"})
}

// ------------------------------
// DELETE /curtains/:id
// ------------------------------
func DeleteCurtain(c *gin.Context) {
	id := c.Param("id")

	var deleted int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&catalog.Curtain{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		if deleted == 0 {
			return nil
		}
		// The images table has no foreign key, so clean up by hand.
		return tx.Delete(&catalog.CurtainImage{}, "curtain_id = ?", id).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete curtain"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curtain not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Curtain deleted"})
}
