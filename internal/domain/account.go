package domain

import "time"

// Account is the identity record held by the session store. The rest of
// the application never reads the credential directly; it only forwards
// plaintext passwords to the session store for hashing/verification.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
