package collaborator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/payment/business/compensation"
)

// Refunds hands refund work to the outbound gateway client through a request
// table; the gateway worker owns the actual provider call.
type Refunds struct {
	db *pgxpool.Pool
}

func NewRefunds(db *pgxpool.Pool) *Refunds {
	return &Refunds{db: db}
}

var _ compensation.RefundGateway = (*Refunds)(nil)

func (r *Refunds) RequestRefund(ctx context.Context, orderID, transactionID string, amountCents int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO refund_requests (id, order_id, transaction_id, amount_cents, status)
		 VALUES ($1, $2, $3, $4, 'pending')`,
		uuid.NewString(), orderID, transactionID, amountCents,
	)
	if err != nil {
		return fmt.Errorf("queue refund request for order %s: %w", orderID, err)
	}
	return nil
}
