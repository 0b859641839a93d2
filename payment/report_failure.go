package payment

import (
	"context"
	"encoding/json"
	"errors"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type ReportPaymentFailureRequest struct {
	SecurityToken string `header:"X-Security-Token" json:"-"`

	OrderID         string          `json:"order_id" validate:"required"`
	AmountCents     int64           `json:"amount_cents" validate:"required,gt=0"`
	Error           string          `json:"error" validate:"required"`
	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`
}

type ReportPaymentFailureResponse struct {
	// Handled is false when the sequence errored and an emergency retry
	// task now owns the failure.
	Handled bool `json:"handled"`
}

// ReportPaymentFailure lets internal callers trigger the compensation
// sequence for a failed payment. The security token must bind the order id
// and amount in the payload.
//
//encore:api private method=POST path=/v1/payments/failures tag:order-token
func (s *Service) ReportPaymentFailure(ctx context.Context, req *ReportPaymentFailureRequest) (*ReportPaymentFailureResponse, error) {
	err := s.compensation.HandlePaymentFailure(ctx, req.OrderID, errors.New(req.Error), req.ProviderPayload)
	if err != nil {
		rlog.Error("payment failure handling deferred to retry", "order_id", req.OrderID, "error", err)
		return &ReportPaymentFailureResponse{Handled: false}, nil
	}
	return &ReportPaymentFailureResponse{Handled: true}, nil
}

// Validate implements validation for ReportPaymentFailureRequest using go-playground/validator
func (r *ReportPaymentFailureRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
