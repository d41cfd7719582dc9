package authenticating

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/fudo-analytics-api/internal/config"
	"github.com/vfg2006/fudo-analytics-api/internal/domain"
	"github.com/vfg2006/fudo-analytics-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

type Authenticator interface {
	Login(password string) (string, error)
	ValidateToken(tokenString string) (*domain.SessionClaims, error)
	Enabled() bool
}

// Service autentica o acesso ao dashboard por senha única compartilhada.
// Não há cadastro de usuários: a senha é comparada contra um hash bcrypt
// configurado e a sessão é um JWT de 24 horas
type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

// Enabled informa se a autenticação está ativa. Sem hash configurado o
// serviço opera em modo de desenvolvimento, com acesso liberado
func (s *Service) Enabled() bool {
	return s.cfg.Auth.DashboardPasswordHash != ""
}

func (s *Service) Login(password string) (string, error) {
	if password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha é obrigatória")
	}

	if !s.Enabled() {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Autenticação desabilitada")
	}

	hash := []byte(s.cfg.Auth.DashboardPasswordHash)
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	token, err := generateJWT(s.cfg.Auth.SecretKey)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func generateJWT(secretKey string) (string, error) {
	claims := domain.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "dashboard",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.SessionClaims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	return claims, nil
}
