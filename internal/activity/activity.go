package activity

import "time"

// Action describes what happened to a visitor's theme preference.
type Action string

const (
	ActionPreferenceChanged   Action = "preference_changed"
	ActionPreferenceCorrupted Action = "preference_corrupted"
	ActionStorageUnavailable  Action = "storage_unavailable"
)

// Source identifies the surface that triggered the entry.
type Source string

const (
	SourcePage   Source = "page"
	SourceAPI    Source = "api"
	SourceSocket Source = "socket"
)

// Entry is a single activity record.
type Entry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	ClientID      string    `json:"client_id"`
	Action        Action    `json:"action"`
	Source        Source    `json:"source"`
	PreviousValue string    `json:"previous_value,omitempty"`
	NewValue      string    `json:"new_value,omitempty"`
	Detail        string    `json:"detail,omitempty"`
}
