package model

import (
	"encoding/json"
	"time"
)

type RetryTask struct {
	ID          string          `json:"id"`
	Type        RetryTaskType   `json:"type"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	Attempt     int32           `json:"attempt"`
	MaxRetries  int32           `json:"max_retries"`
	NextRetryAt time.Time       `json:"next_retry_at"`
	LastError   *string         `json:"last_error,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type RetryTaskType string

const (
	RetryTaskPaymentProcess  RetryTaskType = "payment_process"
	RetryTaskCommissionCalc  RetryTaskType = "commission_calc"
	RetryTaskInventoryAdjust RetryTaskType = "inventory_adjust"
	RetryTaskRefundProcess   RetryTaskType = "refund_process"
	RetryTaskCompensation    RetryTaskType = "compensation"
)

// CompensationTaskPayload is the payload carried by compensation retry tasks.
// RecordID is set when a single compensation record is being retried;
// OrderID/Error/ProviderPayload are set when the whole payment-failure
// sequence has to be replayed (emergency task).
type CompensationTaskPayload struct {
	RecordID        string          `json:"record_id,omitempty"`
	OrderID         string          `json:"order_id,omitempty"`
	Error           string          `json:"error,omitempty"`
	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`
}
