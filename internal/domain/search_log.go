package domain

import "time"

// SearchLog records one suggestion request and its outcome. Logged
// best-effort; the suggestion pipeline never fails on a logging error.
type SearchLog struct {
	ID             string    `gorm:"type:text;primaryKey" json:"id"`
	Query          string    `gorm:"type:text;not null" json:"query"`
	SampleCount    int       `gorm:"default:0" json:"sample_count"`
	ParsedCount    int       `gorm:"default:0" json:"parsed_count"`
	ExtendedCount  int       `gorm:"default:0" json:"extended_count"`
	AvailableCount int       `gorm:"default:0" json:"available_count"`
	Names          string    `gorm:"type:text" json:"names"` // comma-joined final list
	DurationMs     int64     `gorm:"default:0" json:"duration_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the database table name for SearchLog.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (SearchLog) TableName() string {
	return "search_logs"
}
