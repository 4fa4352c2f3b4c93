package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sahan/dominious/internal/domain"
)

func newTestTaskManager(gen TextGenerator) *TaskManager {
	return NewTaskManager(NewMemoryTaskStore(), newTestEnricher(gen, 4))
}

func TestTaskLifecycle(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, _ string) (string, error) {
		return okOutput(), nil
	})
	m := newTestTaskManager(gen)

	names := []string{"alpha", "bravo"}
	id := m.Create(len(names))
	if id == "" {
		t.Fatal("Create returned empty id")
	}

	snap := m.Get(id)
	if snap.Status != domain.TaskStatusPending {
		t.Fatalf("status = %q, want pending", snap.Status)
	}
	if snap.TotalDomains != 2 || snap.Progress != 0 {
		t.Errorf("fresh task: total=%d progress=%d", snap.TotalDomains, snap.Progress)
	}

	m.Run(context.Background(), id, "a shop", names)

	snap = m.Get(id)
	if snap.Status != domain.TaskStatusCompleted {
		t.Fatalf("status = %q, want completed", snap.Status)
	}
	if snap.Progress != 100 || snap.ProcessedDomains != 2 {
		t.Errorf("finished task: progress=%d processed=%d", snap.Progress, snap.ProcessedDomains)
	}
	if snap.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
	if len(snap.Data) != 2 {
		t.Fatalf("got %d details, want 2", len(snap.Data))
	}
	for i, name := range names {
		if snap.Data[i].DomainName != name+".lk" {
			t.Errorf("Data[%d].DomainName = %q, want %q", i, snap.Data[i].DomainName, name+".lk")
		}
	}
}

func TestTaskGetUnknownID(t *testing.T) {
	m := newTestTaskManager(nil)

	snap := m.Get("no-such-task")
	if snap.Status != domain.TaskStatusNotFound {
		t.Errorf("status = %q, want not_found", snap.Status)
	}
	if snap.TaskID != "no-such-task" {
		t.Errorf("TaskID = %q, want echoed id", snap.TaskID)
	}
}

func TestTaskDelete(t *testing.T) {
	m := newTestTaskManager(nil)

	id := m.Create(1)
	if !m.Delete(id) {
		t.Fatal("Delete returned false for existing task")
	}
	if m.Get(id).Status != domain.TaskStatusNotFound {
		t.Error("deleted task still retrievable")
	}
	if m.Delete(id) {
		t.Error("second Delete returned true")
	}
}

func TestTaskPartialResultsVisible(t *testing.T) {
	release := make(chan struct{})
	gen := generatorFunc(func(_ context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "slowpoke") {
			<-release
		}
		return okOutput(), nil
	})
	m := newTestTaskManager(gen)

	names := []string{"quick", "slowpoke"}
	id := m.Create(len(names))

	done := make(chan struct{})
	go func() {
		m.Run(context.Background(), id, "a shop", names)
		close(done)
	}()

	// Wait until the quick name has landed on the snapshot
	deadline := time.Now().Add(2 * time.Second)
	var snap domain.EnrichmentTask
	for {
		snap = m.Get(id)
		if snap.ProcessedDomains >= 1 {
			break
		}
		if time.Now().After(deadline) {
			close(release)
			t.Fatal("timed out waiting for partial progress")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if snap.Status != domain.TaskStatusProcessing {
		t.Errorf("mid-flight status = %q, want processing", snap.Status)
	}
	if len(snap.Data) != 1 {
		t.Errorf("mid-flight partials = %d, want 1", len(snap.Data))
	}
	if snap.Progress != 50 {
		t.Errorf("mid-flight progress = %d, want 50", snap.Progress)
	}

	close(release)
	<-done

	snap = m.Get(id)
	if snap.Status != domain.TaskStatusCompleted || snap.Progress != 100 {
		t.Errorf("final snapshot: status=%q progress=%d", snap.Status, snap.Progress)
	}
}

func TestTaskEmptyBatchCompletesImmediately(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, _ string) (string, error) {
		return okOutput(), nil
	})
	m := newTestTaskManager(gen)

	id := m.Create(0)
	m.Run(context.Background(), id, "a shop", nil)

	snap := m.Get(id)
	if snap.Status != domain.TaskStatusCompleted {
		t.Errorf("status = %q, want completed", snap.Status)
	}
	if snap.Progress != 100 {
		t.Errorf("progress = %d, want 100", snap.Progress)
	}
}
