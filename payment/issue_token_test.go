package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/payment/mocks/business/security_business"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.
// It supports all the same flags that the `go test` command does.

func TestIssueSecurityToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSecurity := security_business.NewMockBusiness(ctrl)
	service := &Service{security: mockSecurity}

	testCases := []struct {
		name          string
		request       *IssueTokenRequest
		mockToken     string
		mockError     error
		expectedCode  errs.ErrCode
		expectSuccess bool
	}{
		{
			name:          "successful_issue",
			request:       &IssueTokenRequest{OrderID: "O-1", AmountCents: 300},
			mockToken:     "tok-abc",
			expectSuccess: true,
		},
		{
			name:         "business_error",
			request:      &IssueTokenRequest{OrderID: "O-1", AmountCents: 300},
			mockError:    errors.New("entropy source failed"),
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockSecurity.EXPECT().
				IssueToken(tc.request.OrderID, tc.request.AmountCents).
				Return(tc.mockToken, tc.mockError)

			resp, err := service.IssueSecurityToken(context.Background(), tc.request)
			if tc.expectSuccess {
				require.NoError(t, err)
				assert.Equal(t, tc.mockToken, resp.Token)
			} else {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
			}
		})
	}
}

func TestIssueTokenRequestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		request *IssueTokenRequest
		valid   bool
	}{
		{name: "valid", request: &IssueTokenRequest{OrderID: "O-1", AmountCents: 300}, valid: true},
		{name: "missing_order_id", request: &IssueTokenRequest{AmountCents: 300}},
		{name: "zero_amount", request: &IssueTokenRequest{OrderID: "O-1"}},
		{name: "negative_amount", request: &IssueTokenRequest{OrderID: "O-1", AmountCents: -5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			}
		})
	}
}
