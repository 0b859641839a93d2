package retry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"encore.app/payment/model"
	"encore.app/payment/repository/retrytasks"
)

// AddTask persists a task for guaranteed eventual execution.
func (s *scheduler) AddTask(ctx context.Context, taskType model.RetryTaskType, payload any, opts TaskOptions) (string, error) {
	if opts.MaxRetries <= 0 {
		return "", fmt.Errorf("max retries must be positive")
	}

	var raw []byte
	if payload != nil {
		var err error
		if rm, ok := payload.(json.RawMessage); ok {
			raw = rm
		} else if raw, err = json.Marshal(payload); err != nil {
			return "", fmt.Errorf("marshal task payload: %w", err)
		}
	}

	id := uuid.NewString()
	_, err := s.repo.CreateRetryTask(ctx, retrytasks.CreateRetryTaskParams{
		ID:          id,
		Type:        string(taskType),
		Payload:     raw,
		MaxRetries:  opts.MaxRetries,
		NextRetryAt: pgtype.Timestamptz{Time: s.now().Add(opts.InitialDelay), Valid: true},
	})
	if err != nil {
		return "", fmt.Errorf("persist retry task: %w", err)
	}

	rlog.Info("retry task queued", "task_id", id, "type", taskType, "max_retries", opts.MaxRetries, "initial_delay", opts.InitialDelay)
	return id, nil
}

// ListTasks returns queued tasks ordered by due time.
func (s *scheduler) ListTasks(ctx context.Context, limit, offset int32) ([]*model.RetryTask, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.repo.ListRetryTasks(ctx, retrytasks.ListRetryTasksParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	tasks := make([]*model.RetryTask, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, convertDBTaskToModel(row))
	}
	return tasks, nil
}

// convertDBTaskToModel converts a database RetryTask to a domain model RetryTask
func convertDBTaskToModel(row retrytasks.RetryTask) *model.RetryTask {
	task := &model.RetryTask{
		ID:          row.ID,
		Type:        model.RetryTaskType(row.Type),
		Payload:     row.Payload,
		Attempt:     row.Attempt,
		MaxRetries:  row.MaxRetries,
		NextRetryAt: row.NextRetryAt.Time,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
	if row.LastError.Valid {
		task.LastError = &row.LastError.String
	}
	return task
}
