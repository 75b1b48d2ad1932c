package models

// User is an identity record. Email is the unique identifier; the bcrypt
// hash is stored, never the plaintext.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don't expose hash
}
