package models

// User represents a directory account. Credentials are stored and compared
// verbatim; the portal performs a stateless credential check with no
// sessions or hashing.
type User struct {
	// ID is the surrogate primary key.
	ID uint `gorm:"primaryKey" json:"id"`
	// Username is the unique login identity.
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	// Password is the opaque credential, matched exactly.
	Password string `gorm:"not null" json:"-"`
	// Role is one of the fixed role enumeration (see config.AdminRoles).
	Role string `gorm:"not null" json:"role"`
}
