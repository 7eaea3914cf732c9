package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

type stubMovementRepo struct {
	mu        sync.Mutex
	inserted  []domain.StockMovement
	lastLimit int
}

func (r *stubMovementRepo) Insert(_ context.Context, m *domain.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserted = append(r.inserted, *m)
	return nil
}

func (r *stubMovementRepo) ListBySweet(_ context.Context, sweetID string, limit int) ([]*domain.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit

	var out []*domain.StockMovement
	for i := len(r.inserted) - 1; i >= 0; i-- {
		if r.inserted[i].SweetID != sweetID {
			continue
		}
		clone := r.inserted[i]
		out = append(out, &clone)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestMovementService_RecordAndList(t *testing.T) {
	repo := &stubMovementRepo{}
	svc := NewMovementService(repo, discardLogger)

	m := domain.StockMovement{
		SweetID:   "s1",
		Kind:      domain.MovementPurchase,
		Amount:    2,
		Remaining: 8,
		Actor:     "u1",
		Timestamp: time.Now().UTC(),
	}
	if err := svc.Record(context.Background(), m); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	got, err := svc.ListBySweet(context.Background(), "s1", 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].Kind != domain.MovementPurchase || got[0].Remaining != 8 {
		t.Fatalf("unexpected movements: %+v", got)
	}
}

func TestMovementService_LimitClamped(t *testing.T) {
	repo := &stubMovementRepo{}
	svc := NewMovementService(repo, discardLogger)

	if _, err := svc.ListBySweet(context.Background(), "s1", 0); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastLimit != defaultMovementLimit {
		t.Fatalf("expected default limit %d, got %d", defaultMovementLimit, repo.lastLimit)
	}

	if _, err := svc.ListBySweet(context.Background(), "s1", 10000); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastLimit != defaultMovementLimit {
		t.Fatalf("oversized limit must be clamped to %d, got %d", defaultMovementLimit, repo.lastLimit)
	}
}
