package models

import "time"

// ActivityLogEntry is one line of a user's activity log.
type ActivityLogEntry struct {
	Activity  string    `json:"activity"`
	Timestamp time.Time `json:"timestamp"`
}
