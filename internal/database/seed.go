package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kinhon/internal/model"
	"kinhon/internal/store"
)

// DemoPhone is the recipient phone the demo orders are addressed to.
const DemoPhone = "123456789"

// DemoOrders returns the demo shipments loaded into an empty store. Tests
// reuse them as fixtures.
func DemoOrders() []model.Order {
	return []model.Order{
		{
			ID:             "ORD-2024-001",
			RecipientPhone: DemoPhone,
			SenderName:     "Maria Silva",
			Status:         model.StatusOutForDelivery,
			Items: []model.OrderItem{
				{Name: "Rice (20kg)", Qty: 2},
				{Name: "Cooking Oil (5L)", Qty: 1},
			},
			EstimatedDelivery: "2024-03-10",
			CreatedAt:         time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:         time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:             "ORD-2024-002",
			RecipientPhone: DemoPhone,
			SenderName:     "Joao Mendes",
			Status:         model.StatusShipped,
			Items: []model.OrderItem{
				{Name: "Milk Powder (2kg)", Qty: 3},
				{Name: "Sugar (5kg)", Qty: 1},
			},
			EstimatedDelivery: "2024-03-15",
			CreatedAt:         time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
			UpdatedAt:         time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:             "ORD-2024-003",
			RecipientPhone: DemoPhone,
			SenderName:     "Ana Gomes",
			Status:         model.StatusDelivered,
			Items: []model.OrderItem{
				{Name: "Canned Tuna (Box)", Qty: 1},
			},
			EstimatedDelivery: "2024-02-28",
			CreatedAt:         time.Date(2024, 2, 20, 9, 15, 0, 0, time.UTC),
			UpdatedAt:         time.Date(2024, 2, 20, 9, 15, 0, 0, time.UTC),
		},
	}
}

// Seed loads the demo orders when the orders table is empty.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM orders`).Scan(&count); err != nil {
		return fmt.Errorf("count orders: %w", err)
	}
	if count > 0 {
		return nil
	}

	orders := store.NewPostgresOrders(db)
	for _, o := range DemoOrders() {
		if err := orders.Put(ctx, o); err != nil {
			return fmt.Errorf("seed order %s: %w", o.ID, err)
		}
	}
	return nil
}
