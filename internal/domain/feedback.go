package domain

import "time"

// Feedback stores a message submitted through the contact form.
type Feedback struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Feedback.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (Feedback) TableName() string {
	return "feedback"
}
