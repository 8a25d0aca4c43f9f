package domain

// UserRole controls what a user may do. Mutating accounting endpoints require
// RoleAdmin or RoleManager.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
	RoleUser    UserRole = "USER"
)

// CanMutateAccounting reports whether the role may write accounting data.
func (r UserRole) CanMutateAccounting() bool {
	return r == RoleAdmin || r == RoleManager
}

// User represents an authenticated API user.
type User struct {
	UserID       string   `json:"userID"` // Primary key (UUID)
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"` // bcrypt hash, never serialized
	Role         UserRole `json:"role"`
	AuditFields
}
