package domain

// UserRole defines the role an account holds relative to its tenant.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// IsValid reports whether the role is one of the known values.
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User represents an account in the domain. A freshly registered account is an
// admin of its own tenancy; OwnerReference, when set, redirects every catalog
// and ledger operation to the referenced account instead (one hop only).
type User struct {
	UserID         string   `json:"userID"`
	Username       string   `json:"username"`
	PasswordHash   string   `json:"-"`
	Role           UserRole `json:"role"`
	OwnerReference *string  `json:"ownerReference,omitempty"`
	AuditFields
}

// TenantID resolves the account whose catalog and ledger rows are
// authoritative for this user. Chained delegation is unsupported: the
// reference is followed at most one hop.
func (u User) TenantID() string {
	if u.OwnerReference != nil && *u.OwnerReference != "" {
		return *u.OwnerReference
	}
	return u.UserID
}
