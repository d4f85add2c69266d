package employee

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceManage  Permission = "attendance.manage"

	// Loan Management
	PermissionLoanRequest Permission = "loan.request"
	PermissionLoanViewOwn Permission = "loan.view_own"
	PermissionLoanViewAll Permission = "loan.view_all"
	PermissionLoanApprove Permission = "loan.approve"

	// Payroll
	PermissionPayrollCalculate Permission = "payroll.calculate"
	PermissionPayrollExport    Permission = "payroll.export"

	// Administration
	PermissionEmployeeManage Permission = "employee.manage"
	PermissionLocationManage Permission = "location.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleGuardia: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionLoanRequest,
		PermissionLoanViewOwn,
	},
	RoleSupervisor: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionLoanRequest,
		PermissionLoanViewOwn,
	},
	RoleCoordinador: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionLoanRequest,
		PermissionLoanViewOwn,
		PermissionLoanViewAll,
		PermissionLoanApprove,
		PermissionPayrollCalculate,
		PermissionPayrollExport,
	},
	RoleDirector: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionLoanRequest,
		PermissionLoanViewOwn,
		PermissionLoanViewAll,
		PermissionLoanApprove,
		PermissionPayrollCalculate,
		PermissionPayrollExport,
		PermissionEmployeeManage,
		PermissionLocationManage,
	},
}

// HasPermission reports whether the role grants the permission.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
