package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is a jsonb-backed list of URLs.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported list column type %T", value)
	}
	return json.Unmarshal(data, l)
}

// Size is the curtain's dimensions in centimetres.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Curtain struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name        string `gorm:"not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Material    string `json:"material"`

	// Plain indexed id columns, no foreign keys. Deleting a category or color
	// leaves the id on the curtain; lookups just come back empty.
	CategoryID *string   `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Category   *Category `json:"category,omitempty"`

	ColorID *string `gorm:"type:uuid;index" json:"colorId,omitempty"`
	Color   *Color  `json:"color,omitempty"`

	Price Price `gorm:"type:jsonb;not null;default:'{}'" json:"price"`

	MainImage        string     `json:"mainImage"`
	AdditionalImages StringList `gorm:"type:jsonb;not null;default:'[]'" json:"additionalImages"`

	InStock bool `gorm:"not null;default:true" json:"inStock"`
	Size    Size `gorm:"embedded;embeddedPrefix:size_" json:"size"`

	Images []CurtainImage `gorm:"foreignKey:CurtainID" json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryRef normalizes the two category shapes a curtain may carry
// (embedded object vs bare id) into a single id.
func (cu Curtain) CategoryRef() string {
	if cu.CategoryID != nil && *cu.CategoryID != "" {
		return *cu.CategoryID
	}
	if cu.Category != nil {
		return cu.Category.ID
	}
	return ""
}

// ColorName returns the embedded color's name, or "" when the curtain has
// no normalized color row.
func (cu Curtain) ColorName() string {
	if cu.Color != nil {
		return cu.Color.Name
	}
	return ""
}
