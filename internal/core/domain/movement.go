package domain

import "time"

// MovementKind distinguishes the two directions a stock adjustment can take.
type MovementKind string

const (
	MovementPurchase MovementKind = "purchase"
	MovementRestock  MovementKind = "restock"
)

// StockMovement is an audit-trail record of a single stock adjustment.
type StockMovement struct {
	SweetID   string       `json:"sweet_id"`
	Kind      MovementKind `json:"kind"`
	Amount    int          `json:"amount"`
	Remaining int          `json:"remaining"` // quantity after the adjustment
	Actor     string       `json:"actor"`     // user id taken from the token
	Timestamp time.Time    `json:"timestamp"`
}
