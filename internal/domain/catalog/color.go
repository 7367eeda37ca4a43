package catalog

import "time"

type Color struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name    string `gorm:"not null" json:"name"`
	HexCode string `gorm:"column:hex_code" json:"hexCode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
