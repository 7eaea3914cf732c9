package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// MovementRepository persists the stock movement audit trail.
type MovementRepository interface {
	Insert(ctx context.Context, m *domain.StockMovement) error
	// ListBySweet returns movements for one sweet, newest first, capped at limit.
	ListBySweet(ctx context.Context, sweetID string, limit int) ([]*domain.StockMovement, error)
}
