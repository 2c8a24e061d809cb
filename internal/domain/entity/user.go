package entity

import "time"

// Roles válidos para User. El vendedor es el administrador del back-office.
const (
	RoleVendedor = "vendedor"
	RoleCliente  = "cliente"
)

// Estados de cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User cuenta que puede iniciar sesión.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // vendedor, cliente
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene acceso al back-office.
func (u User) IsAdmin() bool {
	return u.Role == RoleVendedor
}

// Session sesión viva: usuario autenticado, identificador y expiración.
type Session struct {
	ID        string
	User      User
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión venció en el instante now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
