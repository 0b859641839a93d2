package compensation

import (
	"context"
	"fmt"

	"encore.dev/rlog"
)

// cancelCommission cancels all still-pending commission rows for the order.
// Rows already settled or cancelled are left untouched, so repeating the
// call changes nothing.
func (b *business) cancelCommission(ctx context.Context, orderID string) error {
	cancelled, err := b.commissions.CancelPendingByOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("cancel pending commissions for order %s: %w", orderID, err)
	}

	rlog.Info("commissions cancelled", "order_id", orderID, "count", cancelled)
	return nil
}
