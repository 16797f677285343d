package models

import (
	"time"

	"github.com/google/uuid"
)

// ProcessedEmail records that a mail message has been evaluated once,
// whether or not it produced an expense.
type ProcessedEmail struct {
	ID          uuid.UUID `db:"id"`
	EmailID     string    `db:"email_id"`
	ProcessedAt time.Time `db:"processed_at"`
}
