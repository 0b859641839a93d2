package compensations

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createCompensationRecord = `-- name: CreateCompensationRecord :one
INSERT INTO compensation_records (id, order_id, transaction_id, type, status, reason, payload)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, order_id, transaction_id, type, status, reason, payload, created_at, processed_at
`

type CreateCompensationRecordParams struct {
	ID            string
	OrderID       string
	TransactionID pgtype.Text
	Type          string
	Status        string
	Reason        string
	Payload       []byte
}

func (q *Queries) CreateCompensationRecord(ctx context.Context, arg CreateCompensationRecordParams) (CompensationRecord, error) {
	row := q.db.QueryRow(ctx, createCompensationRecord,
		arg.ID,
		arg.OrderID,
		arg.TransactionID,
		arg.Type,
		arg.Status,
		arg.Reason,
		arg.Payload,
	)
	var i CompensationRecord
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.TransactionID,
		&i.Type,
		&i.Status,
		&i.Reason,
		&i.Payload,
		&i.CreatedAt,
		&i.ProcessedAt,
	)
	return i, err
}

const getCompensationRecord = `-- name: GetCompensationRecord :one
SELECT id, order_id, transaction_id, type, status, reason, payload, created_at, processed_at
FROM compensation_records
WHERE id = $1
`

func (q *Queries) GetCompensationRecord(ctx context.Context, id string) (CompensationRecord, error) {
	row := q.db.QueryRow(ctx, getCompensationRecord, id)
	var i CompensationRecord
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.TransactionID,
		&i.Type,
		&i.Status,
		&i.Reason,
		&i.Payload,
		&i.CreatedAt,
		&i.ProcessedAt,
	)
	return i, err
}

const listCompensationRecordsByOrder = `-- name: ListCompensationRecordsByOrder :many
SELECT id, order_id, transaction_id, type, status, reason, payload, created_at, processed_at
FROM compensation_records
WHERE order_id = $1
ORDER BY created_at
`

func (q *Queries) ListCompensationRecordsByOrder(ctx context.Context, orderID string) ([]CompensationRecord, error) {
	rows, err := q.db.Query(ctx, listCompensationRecordsByOrder, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CompensationRecord
	for rows.Next() {
		var i CompensationRecord
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.TransactionID,
			&i.Type,
			&i.Status,
			&i.Reason,
			&i.Payload,
			&i.CreatedAt,
			&i.ProcessedAt,
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

const updateCompensationStatus = `-- name: UpdateCompensationStatus :one
UPDATE compensation_records
SET status = $2, processed_at = $3
WHERE id = $1
RETURNING id, order_id, transaction_id, type, status, reason, payload, created_at, processed_at
`

type UpdateCompensationStatusParams struct {
	ID          string
	Status      string
	ProcessedAt pgtype.Timestamptz
}

func (q *Queries) UpdateCompensationStatus(ctx context.Context, arg UpdateCompensationStatusParams) (CompensationRecord, error) {
	row := q.db.QueryRow(ctx, updateCompensationStatus,
		arg.ID,
		arg.Status,
		arg.ProcessedAt,
	)
	var i CompensationRecord
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.TransactionID,
		&i.Type,
		&i.Status,
		&i.Reason,
		&i.Payload,
		&i.CreatedAt,
		&i.ProcessedAt,
	)
	return i, err
}
