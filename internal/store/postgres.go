package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kinhon/internal/model"
)

// PostgresOrders implements OrderStore over a SQL handle.
type PostgresOrders struct {
	db *sql.DB
}

func NewPostgresOrders(db *sql.DB) *PostgresOrders {
	return &PostgresOrders{db: db}
}

func (s *PostgresOrders) ListByPhone(ctx context.Context, phone string) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, recipient_phone, sender_name, status, items, estimated_delivery, created_at, updated_at
		FROM orders
		WHERE recipient_phone = $1
		ORDER BY created_at DESC
	`, phone)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

func (s *PostgresOrders) GetByID(ctx context.Context, id string) (model.Order, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, recipient_phone, sender_name, status, items, estimated_delivery, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, ErrNotFound
		}
		return model.Order{}, err
	}
	return o, nil
}

func (s *PostgresOrders) Put(ctx context.Context, o model.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO orders (id, recipient_phone, sender_name, status, items, estimated_delivery, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`, o.ID, o.RecipientPhone, o.SenderName, o.Status, string(items), o.EstimatedDelivery, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// PostgresComplaints implements ComplaintStore over a SQL handle.
type PostgresComplaints struct {
	db *sql.DB
}

func NewPostgresComplaints(db *sql.DB) *PostgresComplaints {
	return &PostgresComplaints{db: db}
}

func (s *PostgresComplaints) Create(ctx context.Context, c *model.Complaint) error {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO complaints (order_id, type, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at
	`, c.OrderID, c.Type, c.Description, model.ComplaintStatusOpen, time.Now())

	if err := row.Scan(&c.ID, &c.Status, &c.CreatedAt); err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

func (s *PostgresComplaints) GetByID(ctx context.Context, id int64) (model.Complaint, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, order_id, type, description, status, created_at
		FROM complaints
		WHERE id = $1
	`, id)

	var c model.Complaint
	if err := row.Scan(&c.ID, &c.OrderID, &c.Type, &c.Description, &c.Status, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Complaint{}, ErrNotFound
		}
		return model.Complaint{}, fmt.Errorf("scan complaint: %w", err)
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (model.Order, error) {
	var o model.Order
	var items string
	var estimated sql.NullString
	if err := row.Scan(&o.ID, &o.RecipientPhone, &o.SenderName, &o.Status, &items, &estimated, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, err
		}
		return model.Order{}, fmt.Errorf("scan order: %w", err)
	}
	if estimated.Valid {
		o.EstimatedDelivery = estimated.String
	}
	if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
		return model.Order{}, fmt.Errorf("parse items for order %s: %w", o.ID, err)
	}
	return o, nil
}
