package models

import (
	"time"

	"github.com/google/uuid"
)

// BankPattern is a per-institution extraction rule set. Each *Patterns field
// is a JSON-encoded array of regex strings in /pattern/flags notation, in
// priority order. Domain is matched against the sender address as a
// case-insensitive substring. IsActive is stored as "true"/"false".
type BankPattern struct {
	ID                    uuid.UUID `db:"id"`
	BankName              string    `db:"bank_name"`
	Domain                string    `db:"domain"`
	AmountPatterns        string    `db:"amount_patterns"`
	MerchantPatterns      string    `db:"merchant_patterns"`
	DatePatterns          string    `db:"date_patterns"`
	PaymentMethodPatterns string    `db:"payment_method_patterns"`
	IsActive              string    `db:"is_active"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

func (p *BankPattern) Active() bool {
	return p.IsActive == "true"
}
