package database

import (
	"database/sql"
	"fmt"
)

// complaints.order_id carries no foreign key on purpose: the system accepts
// complaints against unknown order ids.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS orders (
    id TEXT PRIMARY KEY,
    recipient_phone TEXT NOT NULL,
    sender_name TEXT NOT NULL,
    status TEXT NOT NULL,
    items TEXT NOT NULL,
    estimated_delivery TEXT,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS complaints (
    id BIGSERIAL PRIMARY KEY,
    order_id TEXT NOT NULL,
    type TEXT NOT NULL,
    description TEXT NOT NULL,
    status TEXT DEFAULT 'open',
    created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_orders_recipient_phone ON orders(recipient_phone);
CREATE INDEX IF NOT EXISTS idx_complaints_order_id ON complaints(order_id);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schemaSQL)
	if err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}
