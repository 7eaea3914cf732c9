package domain

import (
	"errors"
	"time"
)

var ErrSweetNotFound = errors.New("sweet not found")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrInvalidAmount = errors.New("amount must be a positive integer")
var ErrForbidden = errors.New("access forbidden")

// Sweet is a catalog entry with a mutable stock quantity.
// Quantity never goes below zero; the repository enforces the guard
// atomically (see SweetRepository.DecrementStock).
type Sweet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
