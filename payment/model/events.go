package model

import "encoding/json"

// PaymentFailureEvent is published once per handled payment failure.
type PaymentFailureEvent struct {
	OrderID string `json:"order_id"`
	Error   string `json:"error"`
	Order   *Order `json:"order,omitempty"`
}

// RetryExhaustedEvent is published when a task has failed on every one of
// its maxRetries attempts and has been removed from the queue. It is the
// terminal signal that manual operator action is required.
type RetryExhaustedEvent struct {
	TaskID   string          `json:"task_id"`
	Type     RetryTaskType   `json:"type"`
	Payload  json.RawMessage `json:"payload,omitempty"`
	Attempts int32           `json:"attempts"`
}

// PaymentNotifyEvent carries a verified provider callback to the order
// processing pipeline.
type PaymentNotifyEvent struct {
	Provider string        `json:"provider"`
	Result   *NotifyResult `json:"result"`
}
