package models

import "time"

// ActivityLog is an append-only record of an administrative mutation.
// Rows are never updated or deleted by the application.
type ActivityLog struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
