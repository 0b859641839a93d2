package payment

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/payment/model"
)

type ListRetryTasksRequest struct {
	Limit  int32 `query:"limit"`
	Offset int32 `query:"offset"`
}

type ListRetryTasksResponse struct {
	Tasks []*model.RetryTask `json:"tasks"`
	Count int                `json:"count"`
}

// ListRetryTasks exposes the queued retry tasks for operational inspection.
//
//encore:api private method=GET path=/v1/payments/retry-tasks
func (s *Service) ListRetryTasks(ctx context.Context, req *ListRetryTasksRequest) (*ListRetryTasksResponse, error) {
	tasks, err := s.retry.ListTasks(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list retry tasks"}
	}
	return &ListRetryTasksResponse{Tasks: tasks, Count: len(tasks)}, nil
}
