package config

// Roles known to the portal.
const (
	RoleStudent      = "student"
	RoleTechAdmin    = "tech_admin"
	RoleCallAdmin    = "call_admin"
	RoleAppAdmin     = "app_admin"
	RoleSysAdmin     = "sys_admin"
	RoleStudentAdmin = "student_admin"
)

// AdminRoles is the explicit set of administrative roles. Every role except
// plain "student" is administrative; membership here replaces the legacy
// `role contains "admin"` substring check so a future role cannot be
// misclassified silently.
var AdminRoles = map[string]bool{
	RoleTechAdmin:    true,
	RoleCallAdmin:    true,
	RoleAppAdmin:     true,
	RoleSysAdmin:     true,
	RoleStudentAdmin: true,
}

// CourseVisibility restricts course listings by role. Roles absent from this
// map see every course; that asymmetry (only two of six roles restricted)
// is policy, not an oversight.
var CourseVisibility = map[string]string{
	RoleTechAdmin: "technicians",
	RoleCallAdmin: "callcenter",
}

// SeedAccount is one bootstrap directory entry.
type SeedAccount struct {
	Username string
	Password string
	Role     string
}

// SeedAccounts are inserted once, idempotently, at startup. One account per
// role, matching the legacy deployment.
var SeedAccounts = []SeedAccount{
	{Username: "student", Password: "123456", Role: RoleStudent},
	{Username: "adminT", Password: "123456", Role: RoleTechAdmin},
	{Username: "adminM", Password: "123456", Role: RoleCallAdmin},
	{Username: "adminA", Password: "123456", Role: RoleAppAdmin},
	{Username: "adminS", Password: "123456", Role: RoleSysAdmin},
	{Username: "admin", Password: "123456", Role: RoleStudentAdmin},
}
