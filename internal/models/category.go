package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named spending bucket. Keywords is a JSON-encoded array of
// lowercase substrings used by the parser for auto-classification. IsActive
// is stored as the string "true"/"false".
type Category struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Icon      string    `db:"icon"`
	Color     string    `db:"color"`
	Keywords  string    `db:"keywords"`
	IsActive  string    `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (c *Category) Active() bool {
	return c.IsActive == "true"
}
