// Package collaborator holds the narrow persistence adapters this subsystem
// uses to reach records owned by the order, inventory, and commission
// domains. Each method is a single atomic update; no call here spans a
// multi-table transaction across domains.
package collaborator

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/payment/business/compensation"
	"encore.app/payment/model"
)

type Orders struct {
	db *pgxpool.Pool
}

func NewOrders(db *pgxpool.Pool) *Orders {
	return &Orders{db: db}
}

var _ compensation.OrderStore = (*Orders)(nil)

func (o *Orders) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := o.db.QueryRow(ctx,
		`SELECT id, status, amount_cents, created_at, updated_at FROM orders WHERE id = $1`,
		id,
	).Scan(&order.ID, &order.Status, &order.AmountCents, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "order not found"}
		}
		return nil, fmt.Errorf("load order %s: %w", id, err)
	}
	return &order, nil
}

func (o *Orders) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	tag, err := o.db.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("update order %s status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return &errs.Error{Code: errs.NotFound, Message: "order not found"}
	}
	return nil
}
