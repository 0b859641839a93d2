package sectoken

import (
	"encoding/json"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
)

var (
	SECURITY_TOKEN_HEADER = "X-Security-Token"
)

// TokenVerifier checks a token's binding of order id and amount.
type TokenVerifier interface {
	VerifyToken(token, orderID string, amountCents int64) bool
}

var verifier TokenVerifier

// Configure sets the token verifier. Called once from service init.
func Configure(v TokenVerifier) {
	verifier = v
}

//encore:middleware target=tag:order-token
func SecurityTokenMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	if verifier == nil {
		rlog.Error("security token middleware used before Configure")
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "security token verification unavailable"},
		}
	}

	token, err := extractToken(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	binding, err := extractOrderBinding(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	if !verifier.VerifyToken(token, binding.OrderID, binding.AmountCents) {
		rlog.Warn("security token rejected", "order_id", binding.OrderID)
		return middleware.Response{
			Err: &errs.Error{Code: errs.PermissionDenied, Message: "invalid security token"},
		}
	}

	return next(req)
}

// extractToken extracts the security token from headers
func extractToken(req middleware.Request) (string, *errs.Error) {
	var token string
	if headers := req.Data().Headers; headers != nil {
		token = headers.Get(SECURITY_TOKEN_HEADER)
	}
	if token == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Security-Token header is required"}
	}
	return token, nil
}

// orderBinding is what the token must bind in the request payload.
type orderBinding struct {
	OrderID     string `json:"order_id"`
	AmountCents int64  `json:"amount_cents"`
}

// extractOrderBinding reads the order id and amount out of the request
// payload for verification against the token.
func extractOrderBinding(req middleware.Request) (*orderBinding, *errs.Error) {
	payload := req.Data().Payload
	if payload == nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "request payload is required"}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request payload", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to read request payload"}
	}

	var binding orderBinding
	if err := json.Unmarshal(raw, &binding); err != nil || binding.OrderID == "" || binding.AmountCents <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "request payload must carry order_id and amount_cents"}
	}

	return &binding, nil
}
