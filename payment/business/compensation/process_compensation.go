package compensation

import (
	"context"
	"encoding/json"
	"fmt"

	"encore.dev/rlog"

	"encore.app/payment/business/retry"
	"encore.app/payment/model"
)

// ProcessCompensation drives one record through its lifecycle. Completed
// records are a no-op: inventory and commission changes are never
// re-applied.
func (b *business) ProcessCompensation(ctx context.Context, record *model.CompensationRecord) error {
	if record.Status == model.CompensationStatusCompleted {
		rlog.Debug("compensation already completed", "record_id", record.ID, "order_id", record.OrderID)
		return nil
	}

	if err := b.markStatus(ctx, record, model.CompensationStatusProcessing); err != nil {
		return fmt.Errorf("mark compensation %s processing: %w", record.ID, err)
	}

	execErr := b.execute(ctx, record)
	if execErr == nil {
		if err := b.markStatus(ctx, record, model.CompensationStatusCompleted); err != nil {
			return fmt.Errorf("mark compensation %s completed: %w", record.ID, err)
		}
		rlog.Info("compensation completed", "record_id", record.ID, "order_id", record.OrderID, "type", record.Type)
		return nil
	}

	if err := b.markStatus(ctx, record, model.CompensationStatusFailed); err != nil {
		rlog.Error("failed to mark compensation failed", "record_id", record.ID, "error", err)
	}

	payload := model.CompensationTaskPayload{RecordID: record.ID}
	if _, err := b.tasks.AddTask(ctx, model.RetryTaskCompensation, payload, retry.TaskOptions{
		MaxRetries:   recordMaxRetries,
		InitialDelay: recordRetryDelay,
	}); err != nil {
		rlog.Error("failed to schedule compensation retry", "record_id", record.ID, "error", err)
	}

	return fmt.Errorf("execute %s compensation %s: %w", record.Type, record.ID, execErr)
}

// execute dispatches by compensation type. Each branch is one explicit
// outcome so partial failure across items stays representable.
func (b *business) execute(ctx context.Context, record *model.CompensationRecord) error {
	switch record.Type {
	case model.CompensationRollbackOrder:
		return b.orders.UpdateOrderStatus(ctx, record.OrderID, model.OrderStatusFailed)

	case model.CompensationAdjustInventory:
		return b.rollbackInventory(ctx, record.OrderID)

	case model.CompensationCancelCommission:
		return b.cancelCommission(ctx, record.OrderID)

	case model.CompensationRefundPayment:
		return b.refundPayment(ctx, record)

	default:
		return fmt.Errorf("unknown compensation type %s", record.Type)
	}
}

func (b *business) refundPayment(ctx context.Context, record *model.CompensationRecord) error {
	var payload struct {
		AmountCents int64 `json:"amount_cents"`
	}
	if len(record.Payload) > 0 {
		if err := json.Unmarshal(record.Payload, &payload); err != nil {
			return fmt.Errorf("malformed refund payload: %w", err)
		}
	}

	transactionID := ""
	if record.TransactionID != nil {
		transactionID = *record.TransactionID
	}
	return b.refunds.RequestRefund(ctx, record.OrderID, transactionID, payload.AmountCents)
}

// HandleRetryTask is registered with the retry scheduler for compensation
// tasks: record retries carry a record id, emergency tasks replay the whole
// payment-failure sequence.
func (b *business) HandleRetryTask(ctx context.Context, task *model.RetryTask) error {
	var payload model.CompensationTaskPayload
	if err := json.Unmarshal(task.Payload, &payload); err != nil {
		return fmt.Errorf("malformed compensation task payload: %w", err)
	}

	if payload.RecordID != "" {
		row, err := b.records.GetCompensationRecord(ctx, payload.RecordID)
		if err != nil {
			return fmt.Errorf("load compensation record %s: %w", payload.RecordID, err)
		}
		return b.ProcessCompensation(ctx, convertDBRecordToModel(row))
	}

	if payload.OrderID == "" {
		return fmt.Errorf("compensation task carries neither record_id nor order_id")
	}
	return b.runFailureSequence(ctx, payload.OrderID, fmt.Errorf("%s", payload.Error), payload.ProviderPayload)
}
