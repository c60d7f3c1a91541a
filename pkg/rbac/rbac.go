package rbac

// Permissions checked around the workplan board.
const (
	PermissionReadWorkplan = "workplan:read"
	PermissionEditTask     = "task:edit"
	PermissionEditFilters  = "filters:edit"
)

// Roles known to the board service.
const (
	RoleStaff  = "staff"
	RoleViewer = "viewer"
)

var rolePermissions = map[string][]string{
	RoleStaff: {
		PermissionReadWorkplan,
		PermissionEditTask,
		PermissionEditFilters,
	},
	RoleViewer: {
		PermissionReadWorkplan,
	},
}

// GetStaffRole resolves a staff member's role. Role assignment lives with the
// external identity provider; until the token carries one, everyone is staff.
func GetStaffRole(staffID int) string {
	return RoleStaff
}

// HasPermission reports whether the staff member holds the permission.
func HasPermission(staffID int, permission string) bool {
	role := GetStaffRole(staffID)
	permissions, ok := rolePermissions[role]
	if !ok {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// CheckPermission returns an error instead of a bool, for handler use.
func CheckPermission(staffID int, permission string) error {
	if !HasPermission(staffID, permission) {
		return &PermissionDeniedError{
			StaffID:    staffID,
			Permission: permission,
		}
	}
	return nil
}

// PermissionDeniedError signals a missing permission.
type PermissionDeniedError struct {
	StaffID    int
	Permission string
}

func (e *PermissionDeniedError) Error() string {
	return "insufficient permissions"
}
