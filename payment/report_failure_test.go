package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/payment/mocks/business/compensation_business"
)

func TestReportPaymentFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompensation := compensation_business.NewMockBusiness(ctrl)
	service := &Service{compensation: mockCompensation}

	t.Run("handled_inline", func(t *testing.T) {
		mockCompensation.EXPECT().
			HandlePaymentFailure(gomock.Any(), "O-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, cause error, payload []byte) error {
				assert.Equal(t, "card declined", cause.Error())
				assert.JSONEq(t, `{"raw":true}`, string(payload))
				return nil
			})

		resp, err := service.ReportPaymentFailure(context.Background(), &ReportPaymentFailureRequest{
			OrderID:         "O-1",
			AmountCents:     300,
			Error:           "card declined",
			ProviderPayload: []byte(`{"raw":true}`),
		})
		require.NoError(t, err)
		assert.True(t, resp.Handled)
	})

	t.Run("deferred_to_emergency_retry", func(t *testing.T) {
		mockCompensation.EXPECT().
			HandlePaymentFailure(gomock.Any(), "O-2", gomock.Any(), gomock.Any()).
			Return(errors.New("orders service down"))

		// The retry task owns the failure now: the API reports deferral, not
		// an error.
		resp, err := service.ReportPaymentFailure(context.Background(), &ReportPaymentFailureRequest{
			OrderID:     "O-2",
			AmountCents: 500,
			Error:       "card declined",
		})
		require.NoError(t, err)
		assert.False(t, resp.Handled)
	})
}

func TestReportPaymentFailureRequestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		request *ReportPaymentFailureRequest
		valid   bool
	}{
		{
			name:    "valid",
			request: &ReportPaymentFailureRequest{OrderID: "O-1", AmountCents: 300, Error: "card declined"},
			valid:   true,
		},
		{
			name:    "missing_error",
			request: &ReportPaymentFailureRequest{OrderID: "O-1", AmountCents: 300},
		},
		{
			name:    "missing_order_id",
			request: &ReportPaymentFailureRequest{AmountCents: 300, Error: "card declined"},
		},
		{
			name:    "non_positive_amount",
			request: &ReportPaymentFailureRequest{OrderID: "O-1", AmountCents: 0, Error: "card declined"},
		},
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
