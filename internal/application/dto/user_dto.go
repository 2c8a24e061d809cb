package dto

import "time"

// RegisterRequest registro público de clientes.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest credenciales; From es la ruta que se intentaba abrir.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	From     string `json:"from"`
}

// LoginResponse token de la sesión viva y destino tras el login.
type LoginResponse struct {
	Token      string       `json:"token"`
	ExpiresAt  time.Time    `json:"expires_at"`
	User       UserResponse `json:"user"`
	RedirectTo string       `json:"redirect_to"`
}

// SessionResponse estado de la sesión actual.
type SessionResponse struct {
	State     string        `json:"state"`
	IsAdmin   bool          `json:"is_admin"`
	User      *UserResponse `json:"user,omitempty"`
	ExpiresAt *time.Time    `json:"expires_at,omitempty"`
}
