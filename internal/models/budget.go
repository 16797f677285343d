package models

import (
	"time"

	"github.com/google/uuid"
)

type Budget struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Category  string    `db:"category"`
	Amount    string    `db:"amount"`
	UpdatedAt time.Time `db:"updated_at"`
}
