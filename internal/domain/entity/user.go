package entity

import "time"

// Roles del personal del establecimiento.
const (
	RoleAdmin     = "admin"
	RoleRecepcion = "recepcion"
	RoleCamarero  = "camarero"
	RoleCocina    = "cocina"
	RoleSpa       = "spa"
	RoleCaja      = "caja"
)

// User es un miembro del personal con acceso a la API.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
