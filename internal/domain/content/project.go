package content

import (
	"encoding/json"
	"time"
)

// Project is a portfolio entry for a completed installation ("công trình").
//
// The canonical shape is thumbnail + rich detailed content. Older rows
// carried flat images/videos galleries instead; those survive in the
// read-only Gallery column and are never written by the API.
type Project struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title    string `gorm:"not null" json:"title"`
	Slug     string `gorm:"not null;uniqueIndex" json:"slug"`
	Location string `json:"location"`
	Type     string `gorm:"not null;index" json:"type"`

	ShortDescription string `gorm:"type:text" json:"shortDescription"`
	DetailedContent  string `gorm:"type:text" json:"detailedContent"`
	Thumbnail        string `json:"thumbnail"`

	Featured  bool `gorm:"not null;default:false;index" json:"featured"`
	Published bool `gorm:"not null;default:false;index" json:"published"`

	// Legacy gallery media, populated only by the data migration.
	Gallery json.RawMessage `gorm:"type:jsonb" json:"gallery,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
