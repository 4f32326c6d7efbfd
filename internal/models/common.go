package models

import "time"

// Timestamps are the bookkeeping columns shared by every mutable table.
type Timestamps struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
