package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// CreateSweetInput carries all data needed to create a catalog entry.
type CreateSweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int
}

// UpdateSweetInput carries a partial catalog edit; nil fields are not changed.
type UpdateSweetInput struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int
}

// AdjustStockInput carries the parameters of a purchase or restock.
type AdjustStockInput struct {
	SweetID string
	Amount  int
	// Actor is the user id from the token, recorded on the movement trail.
	Actor string
}

// SweetService defines use-case operations for the catalog and its stock.
type SweetService interface {
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	Get(ctx context.Context, id string) (*domain.Sweet, error)
	List(ctx context.Context, filter ListSweetsFilter) ([]*domain.Sweet, error)
	Update(ctx context.Context, id string, input UpdateSweetInput) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error

	// Purchase decrements stock by input.Amount, failing with
	// domain.ErrInsufficientStock when not enough remains. The sufficiency
	// check and the decrement are atomic with respect to concurrent
	// adjustments on the same sweet.
	Purchase(ctx context.Context, input AdjustStockInput) (*domain.Sweet, error)
	// Restock increments stock by input.Amount with no upper bound.
	Restock(ctx context.Context, input AdjustStockInput) (*domain.Sweet, error)
}
