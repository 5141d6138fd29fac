package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/testutil"
)

func setupRepo(t *testing.T) repository.SessionRepo {
	t.Helper()
	return repository.NewSQLiteSessionRepo(testutil.NewTestDB(t))
}

// recordingObserver keeps every event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

// countingRepo counts ListByUser calls on top of a real repo.
type countingRepo struct {
	repository.SessionRepo
	mu    sync.Mutex
	lists int
}

func (r *countingRepo) ListByUser(ctx context.Context, user string) ([]*domain.StudySession, error) {
	r.mu.Lock()
	r.lists++
	r.mu.Unlock()
	return r.SessionRepo.ListByUser(ctx, user)
}
