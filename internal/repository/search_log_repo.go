package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahan/dominious/internal/domain"
	"gorm.io/gorm"
)

// SearchLogRepository handles persistence of suggestion request logs.
type SearchLogRepository struct {
	db *gorm.DB
}

// NewSearchLogRepository creates a new search log repository.
func NewSearchLogRepository(db *gorm.DB) *SearchLogRepository {
	return &SearchLogRepository{db: db}
}

// Create stores a search log record, assigning an id when absent.
func (r *SearchLogRepository) Create(ctx context.Context, entry *domain.SearchLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns the most recent search logs.
func (r *SearchLogRepository) List(ctx context.Context, limit, offset int) ([]domain.SearchLog, error) {
	var records []domain.SearchLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	return records, err
}

// Count returns the total number of logged searches.
func (r *SearchLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SearchLog{}).Count(&count).Error
	return count, err
}
