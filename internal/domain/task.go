package domain

import "time"

// TaskStatus represents the status of an enrichment task.
// Values include TaskStatusPending, TaskStatusProcessing,
// TaskStatusCompleted, TaskStatusFailed and TaskStatusNotFound.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"

	// TaskStatusNotFound is a read-time answer for unknown task IDs,
	// never a stored state.
	TaskStatusNotFound TaskStatus = "not_found"
)

// EnrichmentTask tracks one asynchronous enrichment run. It is owned by
// the task registry for its whole lifetime; callers only ever see
// snapshot copies.
type EnrichmentTask struct {
	TaskID           string         `json:"task_id"`
	Status           TaskStatus     `json:"status"`
	Progress         int            `json:"progress"` // 0-100
	TotalDomains     int            `json:"total_domains"`
	ProcessedDomains int            `json:"processed_domains"`
	CreatedAt        time.Time      `json:"created_at"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	Data             []DomainDetail `json:"data,omitempty"`
	Error            string         `json:"error,omitempty"`
}

// Terminal reports whether the task has reached a final state.
func (t *EnrichmentTask) Terminal() bool {
	return t.Status == TaskStatusCompleted || t.Status == TaskStatusFailed
}
