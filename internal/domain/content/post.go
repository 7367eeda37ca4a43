package content

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	PostDraft     = "draft"
	PostPublished = "published"
)

// Tags is a jsonb-backed list of tag strings.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}
	return json.Unmarshal(data, t)
}

// Post is a blog entry.
type Post struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title   string `gorm:"not null" json:"title"`
	Slug    string `gorm:"not null;uniqueIndex" json:"slug"`
	Summary string `gorm:"type:text" json:"summary"`
	Content string `gorm:"type:text" json:"content"`

	Tags          Tags   `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	Status        string `gorm:"not null;default:'draft';index" json:"status"`
	FeaturedImage string `json:"featuredImage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
