package retrytasks

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type RetryTask struct {
	ID          string
	Type        string
	Payload     []byte
	Attempt     int32
	MaxRetries  int32
	NextRetryAt pgtype.Timestamptz
	LastError   pgtype.Text
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}
