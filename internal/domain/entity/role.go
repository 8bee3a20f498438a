package entity

import "strings"

// Role nombre de rol de un usuario. Conjunto abierto: la tabla roles puede
// crecer, pero los roles privilegiados del dashboard son fijos.
type Role string

// Roles conocidos del sistema.
const (
	RoleAdmin Role = "admin"
	RoleRoot  Role = "root"
	RoleGuest Role = "guest"
)

// ParseRole normaliza el nombre de rol recibido (token JWT o DB).
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// CanSeeAllInstitutions indica si el rol ve todas las instituciones
// (alcance global del dashboard). Solo admin y root.
func (r Role) CanSeeAllInstitutions() bool {
	switch Role(strings.ToLower(string(r))) {
	case RoleAdmin, RoleRoot:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
