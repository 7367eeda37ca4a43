package contacts

import "time"

// Lead statuses. Status is the only field mutated after creation.
const (
	StatusNew        = "new"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// Contact is an inbound lead from the storefront contact form.
type Contact struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `json:"email"`
	Phone   string `gorm:"not null" json:"phone"`
	Subject string `json:"subject"`
	Message string `gorm:"type:text" json:"message"`

	Status string `gorm:"not null;default:'new';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidStatus reports whether s is one of the three lead states.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}
