package models

import "time"

// User is the public account record. It never carries the password digest.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credential is the stored account record: the public fields plus the
// password digest. Exactly one credential exists per case-insensitively
// unique username.
type Credential struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// Public strips the digest, leaving the view handed to callers.
func (c Credential) Public() User { return c.User }

// Session is the persisted login state: the logged-in user and the signed
// token proving when the login happened.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
