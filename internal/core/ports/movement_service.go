package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// MovementService records and reads the stock movement audit trail.
type MovementService interface {
	Record(ctx context.Context, m domain.StockMovement) error
	ListBySweet(ctx context.Context, sweetID string, limit int) ([]*domain.StockMovement, error)
}
