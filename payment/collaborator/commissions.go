package collaborator

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/payment/business/compensation"
	"encore.app/payment/model"
)

type Commissions struct {
	db *pgxpool.Pool
}

func NewCommissions(db *pgxpool.Pool) *Commissions {
	return &Commissions{db: db}
}

var _ compensation.CommissionStore = (*Commissions)(nil)

// CancelPendingByOrder cancels only rows still pending; settled or already
// cancelled rows are untouched, which keeps the operation idempotent.
func (c *Commissions) CancelPendingByOrder(ctx context.Context, orderID string) (int64, error) {
	tag, err := c.db.Exec(ctx,
		`UPDATE commissions SET status = $2, updated_at = now() WHERE order_id = $1 AND status = $3`,
		orderID, string(model.CommissionStatusCancelled), string(model.CommissionStatusPending),
	)
	if err != nil {
		return 0, fmt.Errorf("cancel commissions for order %s: %w", orderID, err)
	}
	return tag.RowsAffected(), nil
}
