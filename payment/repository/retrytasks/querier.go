package retrytasks

import (
	"context"
)

type Querier interface {
	CreateRetryTask(ctx context.Context, arg CreateRetryTaskParams) (RetryTask, error)
	GetRetryTask(ctx context.Context, id string) (RetryTask, error)
	ListDueRetryTasks(ctx context.Context, arg ListDueRetryTasksParams) ([]RetryTask, error)
	ListRetryTasks(ctx context.Context, arg ListRetryTasksParams) ([]RetryTask, error)
	UpdateRetryTaskFailure(ctx context.Context, arg UpdateRetryTaskFailureParams) (RetryTask, error)
	DeleteRetryTask(ctx context.Context, id string) error
}

var _ Querier = (*Queries)(nil)
