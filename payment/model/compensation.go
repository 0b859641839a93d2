package model

import (
	"encoding/json"
	"time"
)

type CompensationRecord struct {
	ID            string             `json:"id"`
	OrderID       string             `json:"order_id"`
	TransactionID *string            `json:"transaction_id,omitempty"`
	Type          CompensationType   `json:"type"`
	Status        CompensationStatus `json:"status"`
	Reason        string             `json:"reason"`
	Payload       json.RawMessage    `json:"payload,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	ProcessedAt   *time.Time         `json:"processed_at,omitempty"`
}

type CompensationType string

const (
	CompensationRollbackOrder    CompensationType = "rollback_order"
	CompensationRefundPayment    CompensationType = "refund_payment"
	CompensationAdjustInventory  CompensationType = "adjust_inventory"
	CompensationCancelCommission CompensationType = "cancel_commission"
)

type CompensationStatus string

const (
	CompensationStatusPending    CompensationStatus = "pending"
	CompensationStatusProcessing CompensationStatus = "processing"
	CompensationStatusCompleted  CompensationStatus = "completed"
	CompensationStatusFailed     CompensationStatus = "failed"
)
