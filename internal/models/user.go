package models

// UserRole mirrors the role column values.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
	RoleUser    UserRole = "USER"
)

// User represents one row of users.
type User struct {
	UserID       string   `db:"user_id"`
	Username     string   `db:"username"`
	PasswordHash string   `db:"password_hash"`
	Role         UserRole `db:"role"`
	AuditFields
}
