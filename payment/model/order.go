package model

import "time"

// Narrow contracts consumed from the order/inventory/commission domains.
// The full domain models live outside this subsystem; only the fields the
// compensation flow touches are represented here.

type Order struct {
	ID          string      `json:"id"`
	Status      OrderStatus `json:"status"`
	AmountCents int64       `json:"amount_cents"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusShipped OrderStatus = "shipped"
	OrderStatusFailed  OrderStatus = "failed"
	OrderStatusClosed  OrderStatus = "closed"
)

// ResourcesCommitted reports whether an order in this status has already
// committed downstream resources (inventory deducted, commissions accrued),
// which a payment failure must compensate.
func (s OrderStatus) ResourcesCommitted() bool {
	return s == OrderStatusPaid || s == OrderStatusShipped
}

type InventoryLog struct {
	ID        int64              `json:"id"`
	OrderID   string             `json:"order_id"`
	SKU       string             `json:"sku"`
	Quantity  int64              `json:"quantity"`
	Direction InventoryDirection `json:"direction"`
	CreatedAt time.Time          `json:"created_at"`
}

type InventoryDirection string

const (
	InventoryOutbound InventoryDirection = "out"
	InventoryInbound  InventoryDirection = "in"
)

type CommissionStatus string

const (
	CommissionStatusPending   CommissionStatus = "pending"
	CommissionStatusSettled   CommissionStatus = "settled"
	CommissionStatusCancelled CommissionStatus = "cancelled"
)
