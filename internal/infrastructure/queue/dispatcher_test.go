package queue

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

type recordingMovementService struct {
	mu       sync.Mutex
	recorded []domain.StockMovement
}

func (s *recordingMovementService) Record(_ context.Context, m domain.StockMovement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorded = append(s.recorded, m)
	return nil
}

func (s *recordingMovementService) ListBySweet(_ context.Context, _ string, _ int) ([]*domain.StockMovement, error) {
	return nil, nil
}

func (s *recordingMovementService) snapshot() []domain.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.StockMovement, len(s.recorded))
	copy(out, s.recorded)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestDispatcher_ProcessesEnqueuedMovements(t *testing.T) {
	svc := &recordingMovementService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Enqueue(domain.StockMovement{
			SweetID:   "s" + strconv.Itoa(i%3),
			Kind:      domain.MovementPurchase,
			Amount:    1,
			Timestamp: time.Now(),
		})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == 10 })
}

// Movements for the same sweet always land on the same worker, so their
// persisted order matches enqueue order.
func TestDispatcher_PerSweetOrdering(t *testing.T) {
	svc := &recordingMovementService{}
	d := NewDispatcher(8, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 50
	for i := 0; i < n; i++ {
		d.Enqueue(domain.StockMovement{
			SweetID: "s1",
			Kind:    domain.MovementRestock,
			Amount:  i + 1,
		})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == n })

	recorded := svc.snapshot()
	for i, m := range recorded {
		if m.Amount != i+1 {
			t.Fatalf("ordering violated at %d: got amount %d", i, m.Amount)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(8, &recordingMovementService{}, zerolog.Nop())

	first := d.shardIndex("sweet_42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("sweet_42"); got != first {
			t.Fatalf("shard index not deterministic: %d vs %d", first, got)
		}
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	svc := &recordingMovementService{}
	d := NewDispatcher(1, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	// Give the worker a moment to observe cancellation, then enqueue; the
	// movement must not be processed.
	time.Sleep(20 * time.Millisecond)
	d.Enqueue(domain.StockMovement{SweetID: "s1", Amount: 1})
	time.Sleep(50 * time.Millisecond)

	if len(svc.snapshot()) != 0 {
		t.Fatalf("worker processed after cancellation")
	}
}
