package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleWorker  = "worker"
)

// User representa un usuario del sistema.
// Los workers solo ven sus propios registros; managers y admins ven todo.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Name         string
	Role         string // admin, manager, worker
	Area         string // sede/área por defecto del usuario
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanViewAll indica si el rol puede listar registros de otros actores.
func (u *User) CanViewAll() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}
