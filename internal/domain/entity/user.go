package entity

import "time"

// User usuario del sistema (inventariador, administrador, invitado).
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	CellPhone    string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	RoleID       int64
	Role         Role // nombre del rol, resuelto por JOIN con roles
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre completo para reportes y rankings.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RoleRecord fila de la tabla roles.
type RoleRecord struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
