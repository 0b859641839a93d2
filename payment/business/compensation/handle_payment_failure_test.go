package compensation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/payment/business/retry"
	"encore.app/payment/domain"
	"encore.app/payment/mocks/business/compensation_deps"
	"encore.app/payment/mocks/repository/compensation_repo"
	"encore.app/payment/model"
	"encore.app/payment/repository/compensations"
)

type testMocks struct {
	records     *compensation_repo.MockQuerier
	orders      *compensation_deps.MockOrderStore
	inventory   *compensation_deps.MockInventoryStore
	commissions *compensation_deps.MockCommissionStore
	refunds     *compensation_deps.MockRefundGateway
	tasks       *compensation_deps.MockTaskQueue
	publisher   *compensation_deps.MockPublisher
}

func newTestBusiness(t *testing.T) (*business, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &testMocks{
		records:     compensation_repo.NewMockQuerier(ctrl),
		orders:      compensation_deps.NewMockOrderStore(ctrl),
		inventory:   compensation_deps.NewMockInventoryStore(ctrl),
		commissions: compensation_deps.NewMockCommissionStore(ctrl),
		refunds:     compensation_deps.NewMockRefundGateway(ctrl),
		tasks:       compensation_deps.NewMockTaskQueue(ctrl),
		publisher:   compensation_deps.NewMockPublisher(ctrl),
	}
	b := &business{
		records:     m.records,
		orders:      m.orders,
		inventory:   m.inventory,
		commissions: m.commissions,
		refunds:     m.refunds,
		tasks:       m.tasks,
		publisher:   m.publisher,
		sm:          domain.NewCompensationStateMachine(),
		now:         time.Now,
	}
	return b, m
}

// echoCreate persists-by-echo: the created row mirrors the params so the
// sequence operates on what it wrote.
func echoCreate(_ context.Context, arg compensations.CreateCompensationRecordParams) (compensations.CompensationRecord, error) {
	return compensations.CompensationRecord{
		ID:      arg.ID,
		OrderID: arg.OrderID,
		Type:    arg.Type,
		Status:  arg.Status,
		Reason:  arg.Reason,
		Payload: arg.Payload,
	}, nil
}

func echoUpdate(_ context.Context, arg compensations.UpdateCompensationStatusParams) (compensations.CompensationRecord, error) {
	return compensations.CompensationRecord{ID: arg.ID, Status: arg.Status, ProcessedAt: arg.ProcessedAt}, nil
}

func TestHandlePaymentFailurePaidOrder(t *testing.T) {
	b, m := newTestBusiness(t)
	ctx := context.Background()

	m.orders.EXPECT().GetOrder(gomock.Any(), "O-1").
		Return(&model.Order{ID: "O-1", Status: model.OrderStatusPaid, AmountCents: 300}, nil)

	m.records.EXPECT().ListCompensationRecordsByOrder(gomock.Any(), "O-1").
		Return(nil, nil).Times(3)

	var createdTypes []string
	m.records.EXPECT().CreateCompensationRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, arg compensations.CreateCompensationRecordParams) (compensations.CompensationRecord, error) {
			createdTypes = append(createdTypes, arg.Type)
			return echoCreate(ctx, arg)
		}).Times(3)

	// Each record moves pending -> processing -> completed.
	m.records.EXPECT().UpdateCompensationStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(echoUpdate).Times(6)

	// Once for the rollback_order step, once for the final transition.
	m.orders.EXPECT().UpdateOrderStatus(gomock.Any(), "O-1", model.OrderStatusFailed).
		Return(nil).Times(2)

	m.inventory.EXPECT().ListOutboundLogs(gomock.Any(), "O-1").
		Return([]model.InventoryLog{
			{OrderID: "O-1", SKU: "S1", Quantity: -3, Direction: model.InventoryOutbound},
		}, nil)
	m.inventory.EXPECT().AdjustStock(gomock.Any(), "O-1", "S1", int64(3)).Return(nil)

	m.commissions.EXPECT().CancelPendingByOrder(gomock.Any(), "O-1").Return(int64(2), nil)

	var published *model.PaymentFailureEvent
	m.publisher.EXPECT().PublishPaymentFailure(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *model.PaymentFailureEvent) error {
			published = event
			return nil
		})

	err := b.HandlePaymentFailure(ctx, "O-1", errors.New("card declined"), nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		string(model.CompensationRollbackOrder),
		string(model.CompensationAdjustInventory),
		string(model.CompensationCancelCommission),
	}, createdTypes, "a paid order compensates order, inventory, and commissions")

	require.NotNil(t, published)
	assert.Equal(t, "O-1", published.OrderID)
	assert.Equal(t, "card declined", published.Error)
}

func TestHandlePaymentFailurePendingOrder(t *testing.T) {
	b, m := newTestBusiness(t)
	ctx := context.Background()

	m.orders.EXPECT().GetOrder(gomock.Any(), "O-2").
		Return(&model.Order{ID: "O-2", Status: model.OrderStatusPending, AmountCents: 500}, nil)

	m.records.EXPECT().ListCompensationRecordsByOrder(gomock.Any(), "O-2").Return(nil, nil)

	var createdTypes []string
	m.records.EXPECT().CreateCompensationRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, arg compensations.CreateCompensationRecordParams) (compensations.CompensationRecord, error) {
			createdTypes = append(createdTypes, arg.Type)
			return echoCreate(ctx, arg)
		})

	m.records.EXPECT().UpdateCompensationStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(echoUpdate).Times(2)

	m.orders.EXPECT().UpdateOrderStatus(gomock.Any(), "O-2", model.OrderStatusFailed).
		Return(nil).Times(2)

	m.publisher.EXPECT().PublishPaymentFailure(gomock.Any(), gomock.Any()).Return(nil)

	// No inventory or commission expectations: a pending order committed no
	// resources, so only the order itself is rolled back.
	err := b.HandlePaymentFailure(ctx, "O-2", errors.New("signature invalid"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{string(model.CompensationRollbackOrder)}, createdTypes)
}

func TestHandlePaymentFailureReusesExistingRecords(t *testing.T) {
	b, m := newTestBusiness(t)
	ctx := context.Background()

	m.orders.EXPECT().GetOrder(gomock.Any(), "O-3").
		Return(&model.Order{ID: "O-3", Status: model.OrderStatusPending, AmountCents: 100}, nil)

	// A prior run already created and completed the rollback record: the
	// replay reuses it and the completed step is a no-op.
	m.records.EXPECT().ListCompensationRecordsByOrder(gomock.Any(), "O-3").
		Return([]compensations.CompensationRecord{
			{
				ID:      "C-1",
				OrderID: "O-3",
				Type:    string(model.CompensationRollbackOrder),
				Status:  string(model.CompensationStatusCompleted),
			},
		}, nil)

	m.orders.EXPECT().UpdateOrderStatus(gomock.Any(), "O-3", model.OrderStatusFailed).Return(nil)
	m.publisher.EXPECT().PublishPaymentFailure(gomock.Any(), gomock.Any()).Return(nil)

	err := b.HandlePaymentFailure(ctx, "O-3", errors.New("retry replay"), nil)
	require.NoError(t, err)
}

func TestEnsureRecordLosesInsertRace(t *testing.T) {
	b, m := newTestBusiness(t)
	ctx := context.Background()

	existing := compensations.CompensationRecord{
		ID:      "C-race",
		OrderID: "O-7",
		Type:    string(model.CompensationRollbackOrder),
		Status:  string(model.CompensationStatusPending),
	}

	gomock.InOrder(
		m.records.EXPECT().ListCompensationRecordsByOrder(gomock.Any(), "O-7").Return(nil, nil),
		m.records.EXPECT().CreateCompensationRecord(gomock.Any(), gomock.Any()).
			Return(compensations.CompensationRecord{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation}),
		m.records.EXPECT().ListCompensationRecordsByOrder(gomock.Any(), "O-7").
			Return([]compensations.CompensationRecord{existing}, nil),
	)

	record, err := b.ensureRecord(ctx, "O-7", model.CompensationRollbackOrder, "replay race", nil)
	require.NoError(t, err)
	assert.Equal(t, "C-race", record.ID, "the concurrent writer's record is reused")
}

func TestHandlePaymentFailureEnqueuesEmergencyRetry(t *testing.T) {
	b, m := newTestBusiness(t)
	ctx := context.Background()

	m.orders.EXPECT().GetOrder(gomock.Any(), "O-4").
		Return(nil, errors.New("orders service down"))

	var queued model.CompensationTaskPayload
	m.tasks.EXPECT().AddTask(gomock.Any(), model.RetryTaskCompensation, gomock.Any(), retry.TaskOptions{
		MaxRetries:   emergencyMaxRetries,
		InitialDelay: emergencyDelay,
	}).DoAndReturn(func(_ context.Context, _ model.RetryTaskType, payload any, _ retry.TaskOptions) (string, error) {
		queued = payload.(model.CompensationTaskPayload)
		return "task-1", nil
	})

	err := b.HandlePaymentFailure(ctx, "O-4", errors.New("card declined"), []byte(`{"raw":"notify"}`))
	require.Error(t, err, "the original failure is surfaced even though a retry is queued")

	assert.Equal(t, "O-4", queued.OrderID)
	assert.Empty(t, queued.RecordID, "emergency tasks replay the whole sequence, not one record")
	assert.Equal(t, "card declined", queued.Error)
	assert.JSONEq(t, `{"raw":"notify"}`, string(queued.ProviderPayload))
}

func TestRollbackInventoryPartialFailure(t *testing.T) {
	b, m := newTestBusiness(t)
	ctx := context.Background()

	m.inventory.EXPECT().ListOutboundLogs(gomock.Any(), "O-5").
		Return([]model.InventoryLog{
			{OrderID: "O-5", SKU: "S1", Quantity: -3, Direction: model.InventoryOutbound},
			{OrderID: "O-5", SKU: "S2", Quantity: -1, Direction: model.InventoryOutbound},
		}, nil)

	m.inventory.EXPECT().AdjustStock(gomock.Any(), "O-5", "S1", int64(3)).
		Return(errors.New("stock row locked"))
	m.inventory.EXPECT().AdjustStock(gomock.Any(), "O-5", "S2", int64(1)).Return(nil)

	err := b.rollbackInventory(ctx, "O-5")
	require.Error(t, err, "one failing line fails the record so it is retried, but does not block the others")
	assert.Contains(t, err.Error(), "1 of 2 lines failed")
}

func TestRollbackInventoryNoOutboundLines(t *testing.T) {
	b, m := newTestBusiness(t)

	m.inventory.EXPECT().ListOutboundLogs(gomock.Any(), "O-6").Return(nil, nil)

	assert.NoError(t, b.rollbackInventory(context.Background(), "O-6"))
}
