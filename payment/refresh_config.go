package payment

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type RefreshConfigResponse struct {
	Refreshed bool `json:"refreshed"`
}

// RefreshSecurityConfig forces a reload of every provider's security config.
// Providers whose config fails validation stay blocked until corrected.
//
//encore:api private method=POST path=/v1/payments/security/config/refresh
func (s *Service) RefreshSecurityConfig(ctx context.Context) (*RefreshConfigResponse, error) {
	if err := s.security.Refresh(ctx); err != nil {
		rlog.Error("config refresh failed", "error", err)
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
	}
	return &RefreshConfigResponse{Refreshed: true}, nil
}
