package collaborator

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/payment/business/compensation"
	"encore.app/payment/model"
)

type Inventory struct {
	db *pgxpool.Pool
}

func NewInventory(db *pgxpool.Pool) *Inventory {
	return &Inventory{db: db}
}

var _ compensation.InventoryStore = (*Inventory)(nil)

func (i *Inventory) ListOutboundLogs(ctx context.Context, orderID string) ([]model.InventoryLog, error) {
	rows, err := i.db.Query(ctx,
		`SELECT id, order_id, sku, quantity, direction, created_at
		 FROM inventory_logs
		 WHERE order_id = $1 AND direction = $2
		 ORDER BY id`,
		orderID, string(model.InventoryOutbound),
	)
	if err != nil {
		return nil, fmt.Errorf("list outbound inventory logs: %w", err)
	}
	defer rows.Close()

	var logs []model.InventoryLog
	for rows.Next() {
		var line model.InventoryLog
		if err := rows.Scan(&line.ID, &line.OrderID, &line.SKU, &line.Quantity, &line.Direction, &line.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, line)
	}
	return logs, rows.Err()
}

// AdjustStock records an inbound inventory log line and applies the stock
// delta in one transaction.
func (i *Inventory) AdjustStock(ctx context.Context, orderID, sku string, quantity int64) error {
	tx, err := i.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin inventory adjustment: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO inventory_logs (order_id, sku, quantity, direction) VALUES ($1, $2, $3, $4)`,
		orderID, sku, quantity, string(model.InventoryInbound),
	); err != nil {
		return fmt.Errorf("record inbound inventory log: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE stock_items SET quantity = quantity + $2, updated_at = now() WHERE sku = $1`,
		sku, quantity,
	)
	if err != nil {
		return fmt.Errorf("adjust stock for sku %s: %w", sku, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("unknown sku %s", sku)
	}

	return tx.Commit(ctx)
}
