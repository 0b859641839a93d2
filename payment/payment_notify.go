package payment

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"

	"encore.dev"
	"encore.dev/rlog"

	"encore.app/payment/business/signature"
	"encore.app/payment/middleware/replay"
	"encore.app/payment/model"
)

const maxNotifyBody = 1 << 20 // 1 MiB

// PaymentNotify is the inbound callback surface for payment providers. The
// provider's configured scheme decides how the request is authenticated;
// only authenticated, well-formed callbacks reach business handling.
//
//encore:api public raw method=POST path=/v1/payments/:provider/notify
func (s *Service) PaymentNotify(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	provider := encore.CurrentRequest().PathParams.Get("provider")

	cfg, err := s.security.GetConfig(ctx, provider)
	if err != nil {
		// ConfigurationError blocks the provider entirely.
		rlog.Error("provider blocked by configuration error", "provider", provider, "error", err)
		writeAck(w, http.StatusServiceUnavailable, ackFailure(cfg))
		return
	}

	if !remoteAllowed(cfg, req) {
		rlog.Warn("notify rejected by IP allowlist", "provider", provider)
		writeAck(w, http.StatusForbidden, ackFailure(cfg))
		return
	}

	body, err := io.ReadAll(io.LimitReader(req.Body, maxNotifyBody))
	if err != nil {
		writeAck(w, http.StatusBadRequest, ackFailure(cfg))
		return
	}

	var result *model.NotifyResult
	switch cfg.SignType {
	case "RSA", "RSA2", "HMAC-SHA256":
		result = s.verifyParamNotify(cfg, body)
	default:
		result = s.verifyHeaderNotify(ctx, cfg, req.Header, body)
	}
	if result == nil {
		// Forged or corrupted requests never consume retry budget.
		writeAck(w, http.StatusUnauthorized, ackFailure(cfg))
		return
	}
	if result.Outcome == model.NotifyUnknown {
		rlog.Warn("notify with unknown outcome rejected", "provider", provider, "order_id", result.OrderID)
		writeAck(w, http.StatusBadRequest, ackFailure(cfg))
		return
	}

	if !s.amountConsistent(req, cfg, result) {
		writeAck(w, http.StatusBadRequest, ackFailure(cfg))
		return
	}

	if _, err := PaymentNotifications.Publish(ctx, &model.PaymentNotifyEvent{Provider: provider, Result: result}); err != nil {
		rlog.Error("failed to publish payment notification", "provider", provider, "order_id", result.OrderID, "error", err)
		writeAck(w, http.StatusInternalServerError, ackFailure(cfg))
		return
	}

	if result.Outcome == model.NotifyFailure {
		cause := errors.New(result.ErrorMessage)
		if result.ErrorMessage == "" {
			cause = errors.New("provider reported payment failure")
		}
		if err := s.compensation.HandlePaymentFailure(ctx, result.OrderID, cause, body); err != nil {
			// The emergency retry task now owns the failure; the provider
			// still gets a success ack so it stops re-delivering.
			rlog.Error("payment failure handling deferred to retry", "order_id", result.OrderID, "error", err)
		}
	}

	writeAck(w, http.StatusOK, "success")
}

// verifyHeaderNotify authenticates the timestamp+nonce header scheme and
// parses the JSON body. Returns nil on any authentication failure.
func (s *Service) verifyHeaderNotify(ctx context.Context, cfg *model.ProviderSecurityConfig, headers http.Header, body []byte) *model.NotifyResult {
	if !signature.NewNotifyVerifier(cfg).Verify(headers, body) {
		rlog.Warn("header-signed notify signature rejected", "provider", cfg.Provider)
		return nil
	}

	if !replay.ClaimNonce(ctx, cfg.Provider, headers.Get(signature.HeaderNonce)) {
		return nil
	}

	result, err := model.ParseHeaderNotify(body)
	if err != nil {
		rlog.Warn("header notify parse rejected", "provider", cfg.Provider, "error", err)
		return nil
	}
	return result
}

func writeAck(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ackFailure returns the negative acknowledgment body the provider expects;
// both schemes accept "success" as the positive one.
func ackFailure(cfg *model.ProviderSecurityConfig) string {
	if cfg != nil && cfg.SignType != "" {
		return "fail"
	}
	return "failure"
}

// remoteAllowed checks the optional provider IP allowlist.
func remoteAllowed(cfg *model.ProviderSecurityConfig, req *http.Request) bool {
	if len(cfg.IPAllowlist) == 0 {
		return true
	}
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		host = req.RemoteAddr
	}
	for _, allowed := range cfg.IPAllowlist {
		if host == allowed {
			return true
		}
	}
	return false
}

// amountConsistent cross-checks the notified amount against the order for
// callbacks at or above the provider's amount threshold.
func (s *Service) amountConsistent(req *http.Request, cfg *model.ProviderSecurityConfig, result *model.NotifyResult) bool {
	if cfg.AmountThresholdCents <= 0 || result.AmountCents < cfg.AmountThresholdCents {
		return true
	}
	order, err := s.orders.GetOrder(req.Context(), result.OrderID)
	if err != nil {
		rlog.Error("amount verification failed to load order", "order_id", result.OrderID, "error", err)
		return false
	}
	if order.AmountCents != result.AmountCents {
		rlog.Warn("notify amount mismatch", "order_id", result.OrderID,
			"order_amount_cents", order.AmountCents, "notify_amount_cents", result.AmountCents)
		return false
	}
	return true
}

// verifyParamNotify authenticates the parameter-signed scheme and parses the
// form params. Returns nil on any authentication failure.
func (s *Service) verifyParamNotify(cfg *model.ProviderSecurityConfig, body []byte) *model.NotifyResult {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil
	}
	params := make(map[string]string, len(values))
	for k := range values {
		params[k] = values.Get(k)
	}

	if !signature.NewParamVerifier(cfg).Verify(params) {
		rlog.Warn("param-signed notify signature rejected", "provider", cfg.Provider)
		return nil
	}

	result, err := model.ParseParamNotify(params)
	if err != nil {
		rlog.Warn("param notify parse rejected", "provider", cfg.Provider, "error", err)
		return nil
	}
	return result
}
