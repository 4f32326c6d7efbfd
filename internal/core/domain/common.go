package domain

import "time"

// Timestamps holds standard bookkeeping times for persisted entities.
type Timestamps struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
