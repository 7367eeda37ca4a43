package curtains

import "remcua-backend/internal/domain/catalog"

type CurtainRequest struct {
	Name             string        `json:"name" binding:"required"`
	Description      string        `json:"description"`
	Material         string        `json:"material"`
	CategoryID       *string       `json:"categoryId"`
	ColorID          *string       `json:"colorId"`
	Price            catalog.Price `json:"price" binding:"required"`
	MainImage        string        `json:"mainImage"`
	AdditionalImages []string      `json:"additionalImages"`
	InStock          *bool         `json:"inStock"`
	Size             catalog.Size  `json:"size"`
}

type ListResponse struct {
	Curtains   []catalog.Curtain `json:"curtains"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}
