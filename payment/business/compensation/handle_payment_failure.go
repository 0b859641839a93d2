package compensation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"encore.app/payment/business/retry"
	"encore.app/payment/model"
	"encore.app/payment/repository/compensations"
)

// HandlePaymentFailure reacts to a failed payment for orderID. It always
// records an order rollback; when the order had already committed resources
// it additionally compensates inventory and commissions. The order ends in
// the terminal failed status. If the sequence itself errors, an emergency
// retry task replays it rather than dropping the failure.
func (b *business) HandlePaymentFailure(ctx context.Context, orderID string, cause error, providerPayload []byte) error {
	err := b.runFailureSequence(ctx, orderID, cause, providerPayload)
	if err == nil {
		return nil
	}

	rlog.Error("payment failure sequence errored, enqueueing emergency retry", "order_id", orderID, "error", err)

	payload := model.CompensationTaskPayload{
		OrderID:         orderID,
		Error:           cause.Error(),
		ProviderPayload: providerPayload,
	}
	if _, qErr := b.tasks.AddTask(ctx, model.RetryTaskCompensation, payload, retry.TaskOptions{
		MaxRetries:   emergencyMaxRetries,
		InitialDelay: emergencyDelay,
	}); qErr != nil {
		rlog.Error("failed to enqueue emergency compensation task", "order_id", orderID, "error", qErr)
	}
	return err
}

func (b *business) runFailureSequence(ctx context.Context, orderID string, cause error, providerPayload []byte) error {
	order, err := b.orders.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order %s: %w", orderID, err)
	}
	priorStatus := order.Status

	reason := fmt.Sprintf("payment failure while order in status %s: %v", priorStatus, cause)

	types := []model.CompensationType{model.CompensationRollbackOrder}
	if priorStatus.ResourcesCommitted() {
		types = append(types, model.CompensationAdjustInventory, model.CompensationCancelCommission)
	}

	records := make([]*model.CompensationRecord, 0, len(types))
	for _, compType := range types {
		record, err := b.ensureRecord(ctx, orderID, compType, reason, providerPayload)
		if err != nil {
			return fmt.Errorf("create %s compensation for order %s: %w", compType, orderID, err)
		}
		records = append(records, record)
	}

	// Step failures are contained: ProcessCompensation marks the record
	// failed and schedules its own retry, so the sequence keeps going.
	for _, record := range records {
		if err := b.ProcessCompensation(ctx, record); err != nil {
			rlog.Warn("compensation step failed, retry scheduled",
				"order_id", orderID, "record_id", record.ID, "type", record.Type, "error", err)
		}
	}

	if err := b.orders.UpdateOrderStatus(ctx, orderID, model.OrderStatusFailed); err != nil {
		return fmt.Errorf("transition order %s to failed: %w", orderID, err)
	}

	event := &model.PaymentFailureEvent{
		OrderID: orderID,
		Error:   cause.Error(),
		Order:   order,
	}
	if err := b.publisher.PublishPaymentFailure(ctx, event); err != nil {
		rlog.Error("failed to publish payment_failure event", "order_id", orderID, "error", err)
	}

	rlog.Info("payment failure handled", "order_id", orderID, "prior_status", priorStatus, "compensations", len(records))
	return nil
}

// ensureRecord reuses an existing record of the same type for the order when
// one exists, so replaying the sequence never duplicates compensations.
func (b *business) ensureRecord(ctx context.Context, orderID string, compType model.CompensationType, reason string, payload []byte) (*model.CompensationRecord, error) {
	existing, err := b.records.ListCompensationRecordsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, row := range existing {
		if row.Type == string(compType) {
			return convertDBRecordToModel(row), nil
		}
	}

	row, err := b.records.CreateCompensationRecord(ctx, compensations.CreateCompensationRecordParams{
		ID:      uuid.NewString(),
		OrderID: orderID,
		Type:    string(compType),
		Status:  string(model.CompensationStatusPending),
		Reason:  reason,
		Payload: payload,
	})
	if err != nil {
		// A concurrent replay won the insert race; use its record.
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return b.findRecord(ctx, orderID, compType)
		}
		return nil, err
	}
	return convertDBRecordToModel(row), nil
}

func (b *business) findRecord(ctx context.Context, orderID string, compType model.CompensationType) (*model.CompensationRecord, error) {
	existing, err := b.records.ListCompensationRecordsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, row := range existing {
		if row.Type == string(compType) {
			return convertDBRecordToModel(row), nil
		}
	}
	return nil, fmt.Errorf("compensation record for order %s type %s not found after unique violation", orderID, compType)
}

// convertDBRecordToModel converts a database CompensationRecord to a domain model record
func convertDBRecordToModel(row compensations.CompensationRecord) *model.CompensationRecord {
	record := &model.CompensationRecord{
		ID:        row.ID,
		OrderID:   row.OrderID,
		Type:      model.CompensationType(row.Type),
		Status:    model.CompensationStatus(row.Status),
		Reason:    row.Reason,
		Payload:   row.Payload,
		CreatedAt: row.CreatedAt.Time,
	}
	if row.TransactionID.Valid {
		record.TransactionID = &row.TransactionID.String
	}
	if row.ProcessedAt.Valid {
		record.ProcessedAt = &row.ProcessedAt.Time
	}
	return record
}

// markStatus persists a validated status transition.
func (b *business) markStatus(ctx context.Context, record *model.CompensationRecord, status model.CompensationStatus) error {
	if err := b.sm.Transition(record, status); err != nil {
		return err
	}

	processedAt := pgtype.Timestamptz{}
	if status == model.CompensationStatusCompleted || status == model.CompensationStatusFailed {
		now := b.now()
		processedAt = pgtype.Timestamptz{Time: now, Valid: true}
		record.ProcessedAt = &now
	}

	_, err := b.records.UpdateCompensationStatus(ctx, compensations.UpdateCompensationStatusParams{
		ID:          record.ID,
		Status:      string(status),
		ProcessedAt: processedAt,
	})
	return err
}
