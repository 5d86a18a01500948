package models

// Fault is a user-submitted issue/solution knowledge-base entry. It is
// created pending and becomes publicly listable only once an administrator
// approves it; there is no edit, reject or delete transition.
type Fault struct {
	// ID is the surrogate primary key, monotonically assigned.
	ID uint `gorm:"primaryKey" json:"id"`
	// Username is the submitter's identity.
	Username string `json:"username"`
	// Issue describes the problem.
	Issue string `json:"issue"`
	// Solution is the submitter's proposed fix.
	Solution string `json:"solution"`
	// Media is an optional uploaded-file reference (e.g. /uploads/...).
	Media *string `json:"media"`
	// Approved marks the report as visible in the general listing.
	Approved bool `gorm:"default:false" json:"approved"`
}
