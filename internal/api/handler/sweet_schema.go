package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createSweetRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
}

type updateSweetRequest struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty"    validate:"omitempty,gte=0"`
	Quantity *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

// adjustStockRequest carries the quantity of a purchase or restock. For a
// purchase an omitted quantity defaults to 1; the sign check lives in the
// service so the rule has a single home.
type adjustStockRequest struct {
	Quantity *int `json:"quantity,omitempty"`
}

// --- Response types ---
// These are intentionally separate from the domain types so the JSON contract
// is not coupled to internal service changes.

type sweetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listSweetsResponse struct {
	Data []sweetResponse `json:"data"`
}

type movementResponse struct {
	Kind      string    `json:"kind"`
	Amount    int       `json:"amount"`
	Remaining int       `json:"remaining"`
	Actor     string    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type listMovementsResponse struct {
	SweetID string             `json:"sweet_id"`
	Data    []movementResponse `json:"data"`
}
