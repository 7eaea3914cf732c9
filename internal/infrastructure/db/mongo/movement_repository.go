package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

const movementsCollection = "stock_movements"

type MovementRepository struct {
	coll *mongo.Collection
}

func NewMovementRepository(db *mongo.Database) *MovementRepository {
	return &MovementRepository{coll: db.Collection(movementsCollection)}
}

type mongoMovement struct {
	SweetID   string    `bson:"sweet_id"`
	Kind      string    `bson:"kind"`
	Amount    int       `bson:"amount"`
	Remaining int       `bson:"remaining"`
	Actor     string    `bson:"actor,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *MovementRepository) Insert(ctx context.Context, m *domain.StockMovement) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMovement{
		SweetID:   m.SweetID,
		Kind:      string(m.Kind),
		Amount:    m.Amount,
		Remaining: m.Remaining,
		Actor:     m.Actor,
		Timestamp: m.Timestamp,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListBySweet returns movements for one sweet, newest first.
func (r *MovementRepository) ListBySweet(ctx context.Context, sweetID string, limit int) ([]*domain.StockMovement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"sweet_id": sweetID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer cursor.Close(ctx)

	movements := make([]*domain.StockMovement, 0)
	for cursor.Next(ctx) {
		var mm mongoMovement
		if err := cursor.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode movement: %w", err)
		}
		movements = append(movements, &domain.StockMovement{
			SweetID:   mm.SweetID,
			Kind:      domain.MovementKind(mm.Kind),
			Amount:    mm.Amount,
			Remaining: mm.Remaining,
			Actor:     mm.Actor,
			Timestamp: mm.Timestamp,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

// EnsureIndexes creates the compound index the movement listing relies on.
func (r *MovementRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "sweet_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
