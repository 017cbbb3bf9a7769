package auth

// Module is a functional area of the back office.
type Module string

// The module catalog.
const (
	ModuleAssessment    Module = "assessment"
	ModuleAttendance    Module = "attendance"
	ModuleBranches      Module = "branches"
	ModuleClassrooms    Module = "classrooms"
	ModuleCurricula     Module = "curricula"
	ModuleDevices       Module = "devices"
	ModuleInventory     Module = "inventory"
	ModuleLessons       Module = "lessons"
	ModuleMaterials     Module = "materials"
	ModuleModules       Module = "modules"
	ModuleParents       Module = "parents"
	ModuleStudents      Module = "students"
	ModuleSubjects      Module = "subjects"
	ModuleUsersAndRoles Module = "users-and-roles"
)

// Action is an operation on a module.
type Action string

// The action catalog. Delete is gated by module-manager roles only.
const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
)

// Modules returns the module catalog in a stable order.
func Modules() []Module {
	return []Module{
		ModuleAssessment,
		ModuleAttendance,
		ModuleBranches,
		ModuleClassrooms,
		ModuleCurricula,
		ModuleDevices,
		ModuleInventory,
		ModuleLessons,
		ModuleMaterials,
		ModuleModules,
		ModuleParents,
		ModuleStudents,
		ModuleSubjects,
		ModuleUsersAndRoles,
	}
}

// Actions returns the action catalog.
func Actions() []Action {
	return []Action{ActionRead, ActionWrite, ActionDelete}
}

// Valid reports whether m is part of the catalog.
func (m Module) Valid() bool {
	for _, known := range Modules() {
		if m == known {
			return true
		}
	}

	return false
}

// Valid reports whether a is part of the catalog.
func (a Action) Valid() bool {
	return a == ActionRead || a == ActionWrite || a == ActionDelete
}
