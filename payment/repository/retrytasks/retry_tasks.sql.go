package retrytasks

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createRetryTask = `-- name: CreateRetryTask :one
INSERT INTO retry_tasks (id, type, payload, attempt, max_retries, next_retry_at)
VALUES ($1, $2, $3, 0, $4, $5)
RETURNING id, type, payload, attempt, max_retries, next_retry_at, last_error, created_at, updated_at
`

type CreateRetryTaskParams struct {
	ID          string
	Type        string
	Payload     []byte
	MaxRetries  int32
	NextRetryAt pgtype.Timestamptz
}

func (q *Queries) CreateRetryTask(ctx context.Context, arg CreateRetryTaskParams) (RetryTask, error) {
	row := q.db.QueryRow(ctx, createRetryTask,
		arg.ID,
		arg.Type,
		arg.Payload,
		arg.MaxRetries,
		arg.NextRetryAt,
	)
	var i RetryTask
	err := row.Scan(
		&i.ID,
		&i.Type,
		&i.Payload,
		&i.Attempt,
		&i.MaxRetries,
		&i.NextRetryAt,
		&i.LastError,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getRetryTask = `-- name: GetRetryTask :one
SELECT id, type, payload, attempt, max_retries, next_retry_at, last_error, created_at, updated_at
FROM retry_tasks
WHERE id = $1
`

func (q *Queries) GetRetryTask(ctx context.Context, id string) (RetryTask, error) {
	row := q.db.QueryRow(ctx, getRetryTask, id)
	var i RetryTask
	err := row.Scan(
		&i.ID,
		&i.Type,
		&i.Payload,
		&i.Attempt,
		&i.MaxRetries,
		&i.NextRetryAt,
		&i.LastError,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listDueRetryTasks = `-- name: ListDueRetryTasks :many
SELECT id, type, payload, attempt, max_retries, next_retry_at, last_error, created_at, updated_at
FROM retry_tasks
WHERE next_retry_at <= $1 AND attempt < max_retries
ORDER BY next_retry_at
LIMIT $2
`

type ListDueRetryTasksParams struct {
	NextRetryAt pgtype.Timestamptz
	Limit       int32
}

func (q *Queries) ListDueRetryTasks(ctx context.Context, arg ListDueRetryTasksParams) ([]RetryTask, error) {
	rows, err := q.db.Query(ctx, listDueRetryTasks, arg.NextRetryAt, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RetryTask
	for rows.Next() {
		var i RetryTask
		if err := rows.Scan(
			&i.ID,
			&i.Type,
			&i.Payload,
			&i.Attempt,
			&i.MaxRetries,
			&i.NextRetryAt,
			&i.LastError,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRetryTasks = `-- name: ListRetryTasks :many
SELECT id, type, payload, attempt, max_retries, next_retry_at, last_error, created_at, updated_at
FROM retry_tasks
ORDER BY next_retry_at
LIMIT $1 OFFSET $2
`

type ListRetryTasksParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListRetryTasks(ctx context.Context, arg ListRetryTasksParams) ([]RetryTask, error) {
	rows, err := q.db.Query(ctx, listRetryTasks, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RetryTask
	for rows.Next() {
		var i RetryTask
		if err := rows.Scan(
			&i.ID,
			&i.Type,
			&i.Payload,
			&i.Attempt,
			&i.MaxRetries,
			&i.NextRetryAt,
			&i.LastError,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateRetryTaskFailure = `-- name: UpdateRetryTaskFailure :one
UPDATE retry_tasks
SET attempt = $2, next_retry_at = $3, last_error = $4, updated_at = now()
WHERE id = $1
RETURNING id, type, payload, attempt, max_retries, next_retry_at, last_error, created_at, updated_at
`

type UpdateRetryTaskFailureParams struct {
	ID          string
	Attempt     int32
	NextRetryAt pgtype.Timestamptz
	LastError   pgtype.Text
}

func (q *Queries) UpdateRetryTaskFailure(ctx context.Context, arg UpdateRetryTaskFailureParams) (RetryTask, error) {
	row := q.db.QueryRow(ctx, updateRetryTaskFailure,
		arg.ID,
		arg.Attempt,
		arg.NextRetryAt,
		arg.LastError,
	)
	var i RetryTask
	err := row.Scan(
		&i.ID,
		&i.Type,
		&i.Payload,
		&i.Attempt,
		&i.MaxRetries,
		&i.NextRetryAt,
		&i.LastError,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteRetryTask = `-- name: DeleteRetryTask :exec
DELETE FROM retry_tasks
WHERE id = $1
`

func (q *Queries) DeleteRetryTask(ctx context.Context, id string) error {
	_, err := q.db.Exec(ctx, deleteRetryTask, id)
	return err
}
