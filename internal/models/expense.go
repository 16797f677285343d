package models

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseSource string

const (
	SourceManual ExpenseSource = "manual"
	SourceEmail  ExpenseSource = "email"
)

// Expense amounts are decimal strings with exactly two fractional digits,
// matching the numeric(10,2) column.
type Expense struct {
	ID            uuid.UUID     `db:"id"`
	UserID        uuid.UUID     `db:"user_id"`
	Amount        string        `db:"amount"`
	Merchant      string        `db:"merchant"`
	Category      string        `db:"category"`
	Date          time.Time     `db:"date"`
	PaymentMethod string        `db:"payment_method"`
	Notes         *string       `db:"notes"`
	Source        ExpenseSource `db:"source"`
	EmailID       *string       `db:"email_id"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}
