package compensation

import (
	"context"
	"fmt"

	"encore.dev/rlog"
)

// LineOutcome is the explicit result of compensating one inventory log line.
type LineOutcome struct {
	SKU      string
	Quantity int64
	Err      error
}

// rollbackInventory issues a compensating inbound adjustment for every
// outbound inventory log line tied to the order. One failing line must not
// block the rest: failures are logged, skipped, and reported in aggregate so
// the record is retried (at-least-once).
func (b *business) rollbackInventory(ctx context.Context, orderID string) error {
	logs, err := b.inventory.ListOutboundLogs(ctx, orderID)
	if err != nil {
		return fmt.Errorf("list outbound inventory logs for order %s: %w", orderID, err)
	}
	if len(logs) == 0 {
		rlog.Info("no outbound inventory to roll back", "order_id", orderID)
		return nil
	}

	outcomes := make([]LineOutcome, 0, len(logs))
	for _, line := range logs {
		quantity := line.Quantity
		if quantity < 0 {
			quantity = -quantity
		}
		adjErr := b.inventory.AdjustStock(ctx, orderID, line.SKU, quantity)
		outcomes = append(outcomes, LineOutcome{SKU: line.SKU, Quantity: quantity, Err: adjErr})
		if adjErr != nil {
			rlog.Error("inventory line rollback failed, continuing",
				"order_id", orderID, "sku", line.SKU, "quantity", quantity, "error", adjErr)
		}
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("inventory rollback for order %s: %d of %d lines failed", orderID, failed, len(outcomes))
	}

	rlog.Info("inventory rolled back", "order_id", orderID, "lines", len(outcomes))
	return nil
}
