package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// RegisteredClaims.ID lleva el identificador de la sesión viva; el gate lo compara
// contra la sesión actual para invalidar tokens de sesiones reemplazadas o cerradas.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "vendedor" | "cliente"
}

// SessionID devuelve el identificador de sesión (jti).
func (c *Claims) SessionID() string {
	return c.ID
}

// Subject datos mínimos para firmar un token de sesión.
type Subject struct {
	UserID    string
	SessionID string
	Role      string
}

// Generate firma un token HS256 para la sesión indicada, con expiración absoluta.
func Generate(secret, issuer string, sub Subject, issuedAt, expiresAt time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sub.SessionID,
			Issuer:    issuer,
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: sub.UserID,
		Role:   sub.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
