package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sahan/dominious/internal/domain"
	"github.com/sahan/dominious/internal/logger"
)

// TaskStore holds enrichment task records. Implementations need no
// internal locking: the manager serializes all access behind one
// mutex.
type TaskStore interface {
	Get(id string) (*domain.EnrichmentTask, bool)
	Put(task *domain.EnrichmentTask)
	Delete(id string) bool
}

// MemoryTaskStore is the default in-process task store.
type MemoryTaskStore struct {
	tasks map[string]*domain.EnrichmentTask
}

// NewMemoryTaskStore creates an empty in-memory store.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: make(map[string]*domain.EnrichmentTask)}
}

func (s *MemoryTaskStore) Get(id string) (*domain.EnrichmentTask, bool) {
	task, ok := s.tasks[id]
	return task, ok
}

func (s *MemoryTaskStore) Put(task *domain.EnrichmentTask) {
	s.tasks[task.TaskID] = task
}

func (s *MemoryTaskStore) Delete(id string) bool {
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// TaskManager tracks enrichment batches through their lifecycle:
// pending -> processing -> completed or failed. Snapshots expose
// partial results while a batch is still running.
type TaskManager struct {
	mu       sync.Mutex
	store    TaskStore
	enricher *Enricher
}

// NewTaskManager creates a task manager over the given store.
func NewTaskManager(store TaskStore, enricher *Enricher) *TaskManager {
	if store == nil {
		store = NewMemoryTaskStore()
	}
	return &TaskManager{store: store, enricher: enricher}
}

// Create registers a new pending task and returns its id.
func (m *TaskManager) Create(totalDomains int) string {
	task := &domain.EnrichmentTask{
		TaskID:       uuid.NewString(),
		Status:       domain.TaskStatusPending,
		TotalDomains: totalDomains,
		CreatedAt:    time.Now(),
	}

	m.mu.Lock()
	m.store.Put(task)
	m.mu.Unlock()

	return task.TaskID
}

// Run executes the enrichment batch for a task. It is meant to be
// called on its own goroutine; progress and partial results become
// visible through Get while it runs.
func (m *TaskManager) Run(ctx context.Context, taskID, description string, names []string) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).
				WithFields(logger.Fields{
					logger.FieldComponent: "tasks",
					logger.FieldTaskID:    taskID,
					"panic":               fmt.Sprintf("%v", r),
				}).
				Error("enrichment task panicked")
			m.fail(taskID, fmt.Sprintf("internal error: %v", r))
		}
	}()

	m.transition(taskID, domain.TaskStatusProcessing)

	results := m.enricher.EnrichBatch(ctx, description, names, func(processed, total int, latest domain.DomainDetail) {
		m.mu.Lock()
		defer m.mu.Unlock()
		task, ok := m.store.Get(taskID)
		if !ok {
			return // deleted mid-flight
		}
		task.ProcessedDomains = processed
		task.Progress = processed * 100 / total
		task.Data = append(task.Data, latest)
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.store.Get(taskID)
	if !ok {
		return
	}
	now := time.Now()
	task.Status = domain.TaskStatusCompleted
	task.Progress = 100
	task.ProcessedDomains = len(names)
	task.Data = results
	task.CompletedAt = &now
}

// Get returns a snapshot of a task. Unknown ids yield a not_found
// snapshot rather than an error.
func (m *TaskManager) Get(taskID string) domain.EnrichmentTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.store.Get(taskID)
	if !ok {
		return domain.EnrichmentTask{
			TaskID: taskID,
			Status: domain.TaskStatusNotFound,
		}
	}

	snapshot := *task
	snapshot.Data = append([]domain.DomainDetail(nil), task.Data...)
	return snapshot
}

// Delete removes a task and its cached results.
func (m *TaskManager) Delete(taskID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Delete(taskID)
}

func (m *TaskManager) transition(taskID string, status domain.TaskStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if task, ok := m.store.Get(taskID); ok {
		task.Status = status
	}
}

func (m *TaskManager) fail(taskID, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if task, ok := m.store.Get(taskID); ok {
		now := time.Now()
		task.Status = domain.TaskStatusFailed
		task.Error = reason
		task.CompletedAt = &now
	}
}
