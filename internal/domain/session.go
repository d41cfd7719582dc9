package domain

import "github.com/golang-jwt/jwt/v5"

// SessionClaims são as claims da sessão do dashboard. A autenticação é por
// senha única compartilhada, então não há identidade de usuário no token
type SessionClaims struct {
	jwt.RegisteredClaims
}
