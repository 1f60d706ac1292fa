// Package models defines the storage-level records of the users
// service.
package models

// User is a stored credential record: a stable identifier (email), a
// display name, and the self-describing password hash record. The auth
// core treats the email as an opaque subject reference; only the
// storage layer owns the record.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
}
