package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahan/dominious/internal/domain"
	"gorm.io/gorm"
)

// FeedbackRepository handles persistence of contact-form submissions.
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create stores a feedback record, assigning an id when absent.
func (r *FeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	if fb.ID == "" {
		fb.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(fb).Error
}

// List returns the most recent feedback records.
func (r *FeedbackRepository) List(ctx context.Context, limit, offset int) ([]domain.Feedback, error) {
	var records []domain.Feedback
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	return records, err
}
