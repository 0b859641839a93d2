package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"encore.app/payment/model"
	"encore.app/payment/repository/retrytasks"
)

// Run is the background poll loop. Distinct tasks execute concurrently; a
// given task id is never attempted by two overlapping invocations.
func (s *scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	rlog.Info("retry scheduler started", "poll_interval", s.cfg.PollInterval)

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			rlog.Info("retry scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick selects due tasks and dispatches each on its own goroutine.
func (s *scheduler) tick(ctx context.Context) {
	rows, err := s.repo.ListDueRetryTasks(ctx, retrytasks.ListDueRetryTasksParams{
		NextRetryAt: pgtype.Timestamptz{Time: s.now(), Valid: true},
		Limit:       s.cfg.BatchSize,
	})
	if err != nil {
		rlog.Error("failed to list due retry tasks", "error", err)
		return
	}

	for _, row := range rows {
		task := convertDBTaskToModel(row)
		if _, busy := s.inflight.LoadOrStore(task.ID, struct{}{}); busy {
			continue
		}
		s.wg.Add(1)
		go func(task *model.RetryTask) {
			defer s.wg.Done()
			defer s.inflight.Delete(task.ID)
			s.attempt(ctx, task)
		}(task)
	}
}

// attempt executes one attempt and settles the task: delete on success,
// reschedule with backoff on failure, delete + emit retry_exhausted when the
// final allowed attempt fails.
func (s *scheduler) attempt(ctx context.Context, task *model.RetryTask) {
	attempt := task.Attempt + 1

	err := s.dispatch(ctx, task)
	if err == nil {
		if delErr := s.repo.DeleteRetryTask(ctx, task.ID); delErr != nil {
			rlog.Error("failed to delete completed retry task", "task_id", task.ID, "error", delErr)
			return
		}
		rlog.Info("retry task succeeded", "task_id", task.ID, "type", task.Type, "attempt", attempt)
		return
	}

	if attempt >= task.MaxRetries {
		s.exhaust(ctx, task, attempt, err)
		return
	}

	delay := s.delay(attempt)
	_, updErr := s.repo.UpdateRetryTaskFailure(ctx, retrytasks.UpdateRetryTaskFailureParams{
		ID:          task.ID,
		Attempt:     attempt,
		NextRetryAt: pgtype.Timestamptz{Time: s.now().Add(delay), Valid: true},
		LastError:   pgtype.Text{String: err.Error(), Valid: true},
	})
	if updErr != nil {
		rlog.Error("failed to reschedule retry task", "task_id", task.ID, "error", updErr)
		return
	}
	rlog.Warn("retry task attempt failed", "task_id", task.ID, "type", task.Type, "attempt", attempt, "next_delay", delay, "error", err)
}

// dispatch invokes the type handler, converting panics into failures.
func (s *scheduler) dispatch(ctx context.Context, task *model.RetryTask) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	handler, ok := s.handler(task.Type)
	if !ok {
		return fmt.Errorf("no handler registered for task type %s", task.Type)
	}
	return handler(ctx, task)
}

// exhaust removes a task that failed its final attempt and emits exactly one
// terminal event. Manual operator action takes over from here.
func (s *scheduler) exhaust(ctx context.Context, task *model.RetryTask, attempts int32, cause error) {
	if err := s.repo.DeleteRetryTask(ctx, task.ID); err != nil {
		rlog.Error("failed to delete exhausted retry task", "task_id", task.ID, "error", err)
		return
	}

	rlog.Error("retry task exhausted", "task_id", task.ID, "type", task.Type, "attempts", attempts, "error", cause)

	event := &model.RetryExhaustedEvent{
		TaskID:   task.ID,
		Type:     task.Type,
		Payload:  task.Payload,
		Attempts: attempts,
	}
	if err := s.publisher.PublishRetryExhausted(ctx, event); err != nil {
		rlog.Error("failed to publish retry_exhausted event", "task_id", task.ID, "error", err)
	}
}
