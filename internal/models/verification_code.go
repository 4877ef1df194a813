package models

import "time"

// VerificationCode — at most one live row per email; a new send replaces
// the previous code via upsert on the email column.
type VerificationCode struct {
	ID       int64     `json:"id"`
	Email    string    `json:"email"`
	Code     string    `json:"-"`
	IssuedAt time.Time `json:"issued_at"`
}
