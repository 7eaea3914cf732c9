package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// ListSweetsFilter carries all query parameters for listing sweets.
// All fields are optional and combined with logical AND.
type ListSweetsFilter struct {
	Name     string   // case-insensitive substring match on name
	Category string   // case-insensitive substring match on category
	MinPrice *float64 // inclusive lower price bound
	MaxPrice *float64 // inclusive upper price bound
}

// IsZero reports whether the filter selects the whole catalog.
func (f ListSweetsFilter) IsZero() bool {
	return f.Name == "" && f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// UpdateSweetFields holds a partial update; nil fields are left untouched.
type UpdateSweetFields struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int
}

// SweetRepository defines persistence operations for catalog entries.
type SweetRepository interface {
	Insert(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	// List returns sweets matching filter, newest-created first.
	List(ctx context.Context, filter ListSweetsFilter) ([]*domain.Sweet, error)
	Update(ctx context.Context, id string, fields UpdateSweetFields) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error

	// DecrementStock applies quantity -= amount as a single atomic step whose
	// predicate requires quantity >= amount. It returns the updated sweet,
	// domain.ErrInsufficientStock when the predicate fails, or
	// domain.ErrSweetNotFound when the id is absent. The guard and the mutation
	// must not be observable as separate writes by concurrent callers.
	DecrementStock(ctx context.Context, id string, amount int) (*domain.Sweet, error)
	// IncrementStock applies quantity += amount unconditionally and returns the
	// updated sweet, or domain.ErrSweetNotFound.
	IncrementStock(ctx context.Context, id string, amount int) (*domain.Sweet, error)
}
