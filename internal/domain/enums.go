package domain

type Role string

const (
	RoleOwner      Role = "OWNER"
	RoleFullAccess Role = "FULL_ACCESS"
	RoleReadOnly   Role = "READ_ONLY"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	"OWNER": true, "FULL_ACCESS": true, "READ_ONLY": true,
}

// CanEdit reports whether the role permits mutating operations.
// READ_ONLY (and the zero value) cannot edit.
func (r Role) CanEdit() bool {
	return r == RoleOwner || r == RoleFullAccess
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"TODO": true, "IN_PROGRESS": true, "DONE": true,
}
