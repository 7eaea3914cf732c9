package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/api/metrics"
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// MovementRecorder abstracts the asynchronous audit trail writer (the queue
// dispatcher). Recording is best-effort: a failed or dropped movement never
// fails the adjustment that produced it.
type MovementRecorder interface {
	Enqueue(m domain.StockMovement)
}

// CatalogCache abstracts the Redis-backed cache for the unfiltered listing.
type CatalogCache interface {
	Get(ctx context.Context) ([]*domain.Sweet, bool)
	Set(ctx context.Context, sweets []*domain.Sweet)
	Invalidate(ctx context.Context)
}

type SweetService struct {
	repo      ports.SweetRepository
	movements MovementRecorder // optional
	cache     CatalogCache     // optional
	logger    zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, movements MovementRecorder, cache CatalogCache, logger zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, movements: movements, cache: cache, logger: logger}
}

func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	now := time.Now().UTC()
	sweet := &domain.Sweet{
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, sweet)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create sweet")
		return nil, err
	}

	s.invalidateCache(ctx)
	metrics.SweetsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.logger.Info().Str("sweet_id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

func (s *SweetService) Get(ctx context.Context, id string) (*domain.Sweet, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns sweets matching filter, newest-created first. The unfiltered
// listing is served from the cache when available.
func (s *SweetService) List(ctx context.Context, filter ports.ListSweetsFilter) ([]*domain.Sweet, error) {
	cacheable := filter.IsZero() && s.cache != nil

	if cacheable {
		if sweets, ok := s.cache.Get(ctx); ok {
			return sweets, nil
		}
	}

	sweets, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if cacheable {
		s.cache.Set(ctx, sweets)
	}
	return sweets, nil
}

func (s *SweetService) Update(ctx context.Context, id string, input ports.UpdateSweetInput) (*domain.Sweet, error) {
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, domain.ErrInvalidAmount
	}

	updated, err := s.repo.Update(ctx, id, ports.UpdateSweetFields{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("sweet_id", id).Msg("sweet updated")
	return updated, nil
}

func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("sweet_id", id).Msg("sweet deleted")
	return nil
}

// Purchase decrements stock by input.Amount. The sufficiency check and the
// decrement execute as one conditional store call, so two concurrent
// purchases can never jointly drive the quantity negative.
func (s *SweetService) Purchase(ctx context.Context, input ports.AdjustStockInput) (*domain.Sweet, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	start := time.Now()
	sweet, err := s.repo.DecrementStock(ctx, input.SweetID, input.Amount)
	metrics.StockAdjustmentDuration.WithLabelValues("purchase").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.InsufficientStockTotal.Inc()
			s.logger.Debug().Str("sweet_id", input.SweetID).Int("amount", input.Amount).Msg("purchase rejected, insufficient stock")
		}
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues(sweet.Category).Inc()
	s.recordMovement(sweet, domain.MovementPurchase, input)
	s.invalidateCache(ctx)
	s.logger.Info().Str("sweet_id", sweet.ID).Int("amount", input.Amount).Int("remaining", sweet.Quantity).Msg("purchase applied")
	return sweet, nil
}

// Restock increments stock by input.Amount with no upper bound.
func (s *SweetService) Restock(ctx context.Context, input ports.AdjustStockInput) (*domain.Sweet, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	start := time.Now()
	sweet, err := s.repo.IncrementStock(ctx, input.SweetID, input.Amount)
	metrics.StockAdjustmentDuration.WithLabelValues("restock").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	metrics.RestocksTotal.WithLabelValues(sweet.Category).Inc()
	s.recordMovement(sweet, domain.MovementRestock, input)
	s.invalidateCache(ctx)
	s.logger.Info().Str("sweet_id", sweet.ID).Int("amount", input.Amount).Int("remaining", sweet.Quantity).Msg("restock applied")
	return sweet, nil
}

func (s *SweetService) recordMovement(sweet *domain.Sweet, kind domain.MovementKind, input ports.AdjustStockInput) {
	if s.movements == nil {
		return
	}
	s.movements.Enqueue(domain.StockMovement{
		SweetID:   sweet.ID,
		Kind:      kind,
		Amount:    input.Amount,
		Remaining: sweet.Quantity,
		Actor:     input.Actor,
		Timestamp: time.Now().UTC(),
	})
}

func (s *SweetService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
