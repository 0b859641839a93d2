package sectoken

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/middleware"
)

// createMiddlewareRequest creates a proper middleware.Request for testing
func createMiddlewareRequest(ctx context.Context, headers http.Header, payload interface{}) middleware.Request {
	encoreReq := &encore.Request{
		Path:    "/v1/payments/failures",
		Headers: headers,
		Payload: payload,
	}
	return middleware.NewRequest(ctx, encoreReq)
}

// stubVerifier accepts or rejects every token and records what it was asked.
type stubVerifier struct {
	ok          bool
	token       string
	orderID     string
	amountCents int64
}

func (v *stubVerifier) VerifyToken(token, orderID string, amountCents int64) bool {
	v.token = token
	v.orderID = orderID
	v.amountCents = amountCents
	return v.ok
}

type failurePayload struct {
	OrderID     string `json:"order_id"`
	AmountCents int64  `json:"amount_cents"`
	Error       string `json:"error"`
}

func TestSecurityTokenMiddleware(t *testing.T) {
	payload := &failurePayload{OrderID: "O-1", AmountCents: 300, Error: "card declined"}

	testCases := []struct {
		name         string
		headers      http.Header
		payload      interface{}
		verifierOK   bool
		expectedCode errs.ErrCode
		expectNext   bool
	}{
		{
			name:       "valid_token",
			headers:    http.Header{SECURITY_TOKEN_HEADER: []string{"tok-1"}},
			payload:    payload,
			verifierOK: true,
			expectNext: true,
		},
		{
			name:         "missing_header",
			headers:      http.Header{},
			payload:      payload,
			verifierOK:   true,
			expectedCode: errs.InvalidArgument,
		},
		{
			name:         "rejected_token",
			headers:      http.Header{SECURITY_TOKEN_HEADER: []string{"tok-forged"}},
			payload:      payload,
			verifierOK:   false,
			expectedCode: errs.PermissionDenied,
		},
		{
			name:         "payload_without_binding",
			headers:      http.Header{SECURITY_TOKEN_HEADER: []string{"tok-1"}},
			payload:      &failurePayload{Error: "card declined"},
			verifierOK:   true,
			expectedCode: errs.InvalidArgument,
		},
		{
			name:         "nil_payload",
			headers:      http.Header{SECURITY_TOKEN_HEADER: []string{"tok-1"}},
			payload:      nil,
			verifierOK:   true,
			expectedCode: errs.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubVerifier{ok: tc.verifierOK}
			Configure(stub)

			nextCalled := false
			next := func(req middleware.Request) middleware.Response {
				nextCalled = true
				return middleware.Response{}
			}

			req := createMiddlewareRequest(context.Background(), tc.headers, tc.payload)
			resp := SecurityTokenMiddleware(req, next)

			assert.Equal(t, tc.expectNext, nextCalled)
			if tc.expectNext {
				assert.NoError(t, resp.Err)
				assert.Equal(t, "tok-1", stub.token)
				assert.Equal(t, "O-1", stub.orderID)
				assert.Equal(t, int64(300), stub.amountCents)
			} else {
				assert.Equal(t, tc.expectedCode, errs.Code(resp.Err))
			}
		})
	}
}

func TestSecurityTokenMiddlewareUnconfigured(t *testing.T) {
	Configure(nil)
	t.Cleanup(func() { Configure(&stubVerifier{}) })

	req := createMiddlewareRequest(context.Background(),
		http.Header{SECURITY_TOKEN_HEADER: []string{"tok-1"}},
		&failurePayload{OrderID: "O-1", AmountCents: 300})

	resp := SecurityTokenMiddleware(req, func(middleware.Request) middleware.Response {
		t.Fatal("next must not run without a configured verifier")
		return middleware.Response{}
	})
	assert.Equal(t, errs.Internal, errs.Code(resp.Err))
}
