package content

import "time"

// Banner is a homepage hero slide. Order determines display sequence; the
// admin UI does not enforce uniqueness.
type Banner struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"not null" json:"image"`
	Link        string `json:"link"`

	IsActive bool `gorm:"not null;default:true" json:"isActive"`
	Order    int  `gorm:"column:display_order;not null;default:0;index" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
