package models

// Admin represents an administrator account. The password is stored
// only as a bcrypt hash and never serialized.
type Admin struct {
	ID           int    `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
}
