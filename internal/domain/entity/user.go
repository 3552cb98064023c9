package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleCaixa  = "caixa"
	RoleGarcom = "garcom"
)

// User representa um operador do PDV (caixa, garçom ou administrador).
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em texto plano depois de persistir
	Name         string
	Role         string // admin, caixa, garcom
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
