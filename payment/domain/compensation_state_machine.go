package domain

import (
	"encore.dev/beta/errs"

	"encore.app/payment/model"
)

// CompensationStateMachine validates compensation record status transitions.
// Completed is terminal: re-processing a completed record is a no-op, never
// a transition.
type CompensationStateMachine struct {
	transitions map[model.CompensationStatus][]model.CompensationStatus
}

// NewCompensationStateMachine creates the state machine with the allowed
// transition table.
func NewCompensationStateMachine() *CompensationStateMachine {
	return &CompensationStateMachine{
		transitions: map[model.CompensationStatus][]model.CompensationStatus{
			model.CompensationStatusPending: {
				model.CompensationStatusProcessing,
			},
			model.CompensationStatusProcessing: {
				model.CompensationStatusCompleted,
				model.CompensationStatusFailed,
			},
			// Failed records are picked up again by the retry scheduler.
			model.CompensationStatusFailed: {
				model.CompensationStatusProcessing,
			},
			model.CompensationStatusCompleted: {},
		},
	}
}

// CanTransition reports whether from -> to is an allowed transition.
func (m *CompensationStateMachine) CanTransition(from, to model.CompensationStatus) bool {
	for _, next := range m.transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates and applies a status change on the in-memory record.
// Persisting the change stays with the caller.
func (m *CompensationStateMachine) Transition(record *model.CompensationRecord, to model.CompensationStatus) error {
	if !m.CanTransition(record.Status, to) {
		return &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: "invalid compensation status transition from " + string(record.Status) + " to " + string(to),
		}
	}
	record.Status = to
	return nil
}
