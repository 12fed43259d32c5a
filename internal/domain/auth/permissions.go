package auth

const (
	RoleAdmin       = "Admin"
	RoleCoordinator = "Coordinator"
	RoleMember      = "Member"
)

const (
	PermEventsRead      = "events.read"
	PermEventsWrite     = "events.write"
	PermPersonnelRead   = "personnel.read"
	PermPersonnelWrite  = "personnel.write"
	PermWorkRecordsRead = "workrecords.read"
	PermWorkRecordsLog  = "workrecords.log"
	PermPayrollRead     = "payroll.read"
	PermPayrollRun      = "payroll.run"
	PermPayrollClose    = "payroll.close"
	PermPaymentsRead    = "payments.read"
	PermPaymentsWrite   = "payments.write"
	PermSuppliersRead   = "suppliers.read"
	PermSuppliersWrite  = "suppliers.write"
	PermReportsRead     = "reports.read"
)

var DefaultPermissions = []string{
	PermEventsRead,
	PermEventsWrite,
	PermPersonnelRead,
	PermPersonnelWrite,
	PermWorkRecordsRead,
	PermWorkRecordsLog,
	PermPayrollRead,
	PermPayrollRun,
	PermPayrollClose,
	PermPaymentsRead,
	PermPaymentsWrite,
	PermSuppliersRead,
	PermSuppliersWrite,
	PermReportsRead,
}

var RolePermissions = map[string][]string{
	RoleMember: {
		PermEventsRead,
		PermPersonnelRead,
		PermWorkRecordsRead,
		PermWorkRecordsLog,
		PermReportsRead,
	},
	RoleCoordinator: {
		PermEventsRead,
		PermEventsWrite,
		PermPersonnelRead,
		PermWorkRecordsRead,
		PermWorkRecordsLog,
		PermPayrollRead,
		PermPayrollRun,
		PermPaymentsRead,
		PermSuppliersRead,
		PermSuppliersWrite,
		PermReportsRead,
	},
	RoleAdmin: DefaultPermissions,
}
