package models

import "time"

// Session is the session-scope copy of the authenticated user.
type Session struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	LoginTime time.Time `json:"loginTime"`
}

func NewSession(u User, loginTime time.Time) Session {
	return Session{ID: u.ID, FullName: u.FullName, Email: u.Email, LoginTime: loginTime}
}
