package models

// User is the persistence model for the users table.
type User struct {
	UserID         string  `db:"user_id"`
	Username       string  `db:"username"`
	PasswordHash   string  `db:"password_hash"`
	Role           string  `db:"role"`
	OwnerReference *string `db:"owner_reference"` // Nullable FK -> users.user_id
	AuditFields
}
