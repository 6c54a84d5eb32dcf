package models

import "time"

const ContactStatusNew = "new"

type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// ContactDraft is the autosaved, not yet submitted contact form.
type ContactDraft struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HasContent reports whether the draft is worth saving. Subject alone does
// not count: it is a select with a preset value.
func (d ContactDraft) HasContent() bool {
	return d.Name != "" || d.Email != "" || d.Message != ""
}

// Expired reports whether the draft is older than ttl at now.
func (d ContactDraft) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(d.Timestamp) > ttl
}
