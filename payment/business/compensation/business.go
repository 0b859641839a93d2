package compensation

import (
	"context"
	"time"

	"encore.app/payment/business/retry"
	"encore.app/payment/domain"
	"encore.app/payment/model"
	"encore.app/payment/repository/compensations"
)

// Narrow collaborator contracts. The order/inventory/commission domains own
// these records; each call is one atomic persistence update.

type OrderStore interface {
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error
}

type InventoryStore interface {
	ListOutboundLogs(ctx context.Context, orderID string) ([]model.InventoryLog, error)
	// AdjustStock applies an inbound adjustment of quantity units of sku,
	// recording a compensating inventory log line for orderID.
	AdjustStock(ctx context.Context, orderID, sku string, quantity int64) error
}

type CommissionStore interface {
	// CancelPendingByOrder cancels all still-pending commission rows for the
	// order and returns how many were affected. Non-pending rows are left
	// untouched.
	CancelPendingByOrder(ctx context.Context, orderID string) (int64, error)
}

type RefundGateway interface {
	RequestRefund(ctx context.Context, orderID, transactionID string, amountCents int64) error
}

type Publisher interface {
	PublishPaymentFailure(ctx context.Context, event *model.PaymentFailureEvent) error
}

// TaskQueue is the slice of the retry scheduler this package needs.
type TaskQueue interface {
	AddTask(ctx context.Context, taskType model.RetryTaskType, payload any, opts retry.TaskOptions) (string, error)
}

type Business interface {
	// HandlePaymentFailure runs the compensation sequence for a failed
	// payment. Errors in the sequence enqueue an emergency retry task so
	// the failure is never silently dropped.
	HandlePaymentFailure(ctx context.Context, orderID string, cause error, providerPayload []byte) error

	// ProcessCompensation drives one record through
	// Processing -> Completed|Failed. A completed record is a no-op.
	ProcessCompensation(ctx context.Context, record *model.CompensationRecord) error

	// HandleRetryTask is the retry scheduler entry point for compensation
	// tasks.
	HandleRetryTask(ctx context.Context, task *model.RetryTask) error
}

const (
	// emergencyMaxRetries is the budget for replaying a whole
	// payment-failure sequence that errored partway.
	emergencyMaxRetries = 10
	emergencyDelay      = 30 * time.Second

	// recordMaxRetries is the budget for re-processing a single failed
	// compensation record.
	recordMaxRetries = 5
	recordRetryDelay = time.Minute
)

type business struct {
	records     compensations.Querier
	orders      OrderStore
	inventory   InventoryStore
	commissions CommissionStore
	refunds     RefundGateway
	tasks       TaskQueue
	publisher   Publisher
	sm          *domain.CompensationStateMachine
	now         func() time.Time
}

// NewCompensationBusiness creates the saga orchestrator for payment
// failures.
func NewCompensationBusiness(
	records compensations.Querier,
	orders OrderStore,
	inventory InventoryStore,
	commissions CommissionStore,
	refunds RefundGateway,
	tasks TaskQueue,
	publisher Publisher,
) Business {
	return &business{
		records:     records,
		orders:      orders,
		inventory:   inventory,
		commissions: commissions,
		refunds:     refunds,
		tasks:       tasks,
		publisher:   publisher,
		sm:          domain.NewCompensationStateMachine(),
		now:         time.Now,
	}
}
