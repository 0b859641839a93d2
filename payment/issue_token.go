package payment

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type IssueTokenRequest struct {
	OrderID     string `json:"order_id" validate:"required"`
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
}

type IssueTokenResponse struct {
	Token string `json:"token"`
}

// IssueSecurityToken issues a short-lived token binding an order and amount
// for internal calls, so neither can be tampered with in transit.
//
//encore:api private method=POST path=/v1/payments/security/tokens
func (s *Service) IssueSecurityToken(ctx context.Context, req *IssueTokenRequest) (*IssueTokenResponse, error) {
	token, err := s.security.IssueToken(req.OrderID, req.AmountCents)
	if err != nil {
		rlog.Error("failed to issue security token", "order_id", req.OrderID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to issue security token"}
	}
	return &IssueTokenResponse{Token: token}, nil
}

// Validate implements validation for IssueTokenRequest using go-playground/validator
func (r *IssueTokenRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
