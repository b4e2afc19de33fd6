package store

import (
	"context"
	"errors"

	"kinhon/internal/model"
)

// ErrNotFound is returned when no entity matches the given key.
var ErrNotFound = errors.New("not found")

type OrderStore interface {
	// ListByPhone returns all orders for a recipient phone, most recent
	// first. Items are parsed into structured form.
	ListByPhone(ctx context.Context, phone string) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (model.Order, error)
	Put(ctx context.Context, o model.Order) error
}

type ComplaintStore interface {
	// Create persists a new complaint and fills in its assigned id,
	// status and creation timestamp.
	Create(ctx context.Context, c *model.Complaint) error
	GetByID(ctx context.Context, id int64) (model.Complaint, error)
}
