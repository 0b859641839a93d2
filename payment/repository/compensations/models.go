package compensations

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type CompensationRecord struct {
	ID            string
	OrderID       string
	TransactionID pgtype.Text
	Type          string
	Status        string
	Reason        string
	Payload       []byte
	CreatedAt     pgtype.Timestamptz
	ProcessedAt   pgtype.Timestamptz
}
