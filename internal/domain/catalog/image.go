package catalog

import "time"

// CurtainImage is the per-curtain gallery sub-resource. Rows are managed
// independently of the curtain record itself.
type CurtainImage struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	CurtainID string `gorm:"type:uuid;not null;index" json:"curtainId"`
	URL       string `gorm:"not null" json:"url"`
	IsMain    bool   `gorm:"not null;default:false" json:"isMain"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
