package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev/beta/errs"

	"encore.app/payment/model"
)

func TestCanTransition(t *testing.T) {
	sm := NewCompensationStateMachine()

	testCases := []struct {
		from    model.CompensationStatus
		to      model.CompensationStatus
		allowed bool
	}{
		{from: model.CompensationStatusPending, to: model.CompensationStatusProcessing, allowed: true},
		{from: model.CompensationStatusProcessing, to: model.CompensationStatusCompleted, allowed: true},
		{from: model.CompensationStatusProcessing, to: model.CompensationStatusFailed, allowed: true},
		{from: model.CompensationStatusFailed, to: model.CompensationStatusProcessing, allowed: true},

		{from: model.CompensationStatusPending, to: model.CompensationStatusCompleted, allowed: false},
		{from: model.CompensationStatusPending, to: model.CompensationStatusFailed, allowed: false},
		{from: model.CompensationStatusCompleted, to: model.CompensationStatusProcessing, allowed: false},
		{from: model.CompensationStatusCompleted, to: model.CompensationStatusFailed, allowed: false},
		{from: model.CompensationStatusFailed, to: model.CompensationStatusCompleted, allowed: false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, sm.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionAppliesOrRejects(t *testing.T) {
	sm := NewCompensationStateMachine()

	record := &model.CompensationRecord{ID: "C-1", Status: model.CompensationStatusPending}

	require.NoError(t, sm.Transition(record, model.CompensationStatusProcessing))
	assert.Equal(t, model.CompensationStatusProcessing, record.Status)

	require.NoError(t, sm.Transition(record, model.CompensationStatusCompleted))
	assert.Equal(t, model.CompensationStatusCompleted, record.Status)

	err := sm.Transition(record, model.CompensationStatusProcessing)
	require.Error(t, err, "completed is terminal")
	assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
	assert.Equal(t, model.CompensationStatusCompleted, record.Status, "rejected transition leaves the record untouched")
}
