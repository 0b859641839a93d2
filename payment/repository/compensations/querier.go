package compensations

import (
	"context"
)

type Querier interface {
	CreateCompensationRecord(ctx context.Context, arg CreateCompensationRecordParams) (CompensationRecord, error)
	GetCompensationRecord(ctx context.Context, id string) (CompensationRecord, error)
	ListCompensationRecordsByOrder(ctx context.Context, orderID string) ([]CompensationRecord, error)
	UpdateCompensationStatus(ctx context.Context, arg UpdateCompensationStatusParams) (CompensationRecord, error)
}

var _ Querier = (*Queries)(nil)
