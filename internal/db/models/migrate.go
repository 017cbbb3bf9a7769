package models

// All returns every model in migration order.
func All() []any {
	return []any{
		&Company{},
		&Branch{},
		&Permission{},
		&Role{},
		&RolePermission{},
		&User{},
		&UserBranch{},
		&UserRole{},
		&Student{},
		&Parent{},
	}
}
