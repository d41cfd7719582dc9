package fudoclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fudo-analytics-api/internal/config"
	"github.com/vfg2006/fudo-analytics-api/internal/domain"

	fudodomain "github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/domain"
)

const (
	// tokenTTL é a validade do token informada pela Fudo quando a resposta
	// não traz o instante de expiração
	tokenTTL = 24 * time.Hour

	// renewalWindow antecipa a renovação para não usar um token prestes a expirar
	renewalWindow = 5 * time.Minute

	// maxErrorBodyBytes limita o corpo de erro carregado para log e mensagem
	maxErrorBodyBytes = 2048
)

// TokenManager gerencia o token de acesso da API da Fudo: troca de
// credenciais, cache e renovação antes da expiração. O par verificação +
// renovação roda dentro de um mutex para que requisições concorrentes não
// disparem trocas de credenciais redundantes
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetValidToken retorna o token em cache enquanto ele for válido. Quando o
// token não existe ou está a menos de cinco minutos de expirar, realiza uma
// nova troca de credenciais antes de retornar
func (tm *TokenManager) GetValidToken(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.token != "" && time.Until(tm.expiresAt) > renewalWindow {
		return tm.token, nil
	}

	return tm.exchangeLocked(ctx)
}

// Invalidate descarta o token em cache, forçando uma nova troca de
// credenciais na próxima chamada. Usado pelo fetcher quando a API responde
// com falha de autenticação
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.token = ""
	tm.expiresAt = time.Time{}
}

// exchangeLocked realiza a troca apiKey/apiSecret por um bearer token.
// Deve ser chamado com o mutex já adquirido
func (tm *TokenManager) exchangeLocked(ctx context.Context) (string, error) {
	if !tm.cfg.Fudo.HasCredentials() {
		return "", domain.NewAuthError(0, "apiKey ou apiSecret não configurados")
	}

	payload, err := json.Marshal(fudodomain.AuthRequest{
		APIKey:    tm.cfg.Fudo.APIKey,
		APISecret: tm.cfg.Fudo.APISecret,
	})
	if err != nil {
		return "", domain.NewAuthError(0, fmt.Sprintf("erro ao montar requisição de autenticação: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tm.cfg.Fudo.AuthURL, bytes.NewReader(payload))
	if err != nil {
		return "", domain.NewAuthError(0, fmt.Sprintf("erro ao criar requisição de autenticação: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return "", domain.NewAuthError(0, fmt.Sprintf("erro ao chamar endpoint de autenticação: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return "", domain.NewAuthError(resp.StatusCode, fmt.Sprintf("erro ao ler resposta de autenticação: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Falha na troca de credenciais com a Fudo")
		return "", domain.NewAuthError(resp.StatusCode, string(body))
	}

	var authResp fudodomain.AuthResponse
	if err := json.Unmarshal(body, &authResp); err != nil {
		return "", domain.NewAuthError(resp.StatusCode, fmt.Sprintf("erro ao decodificar resposta de autenticação: %v", err))
	}

	if authResp.Token == "" {
		return "", domain.NewAuthError(resp.StatusCode, "token retornado pela API é vazio")
	}

	tm.token = authResp.Token
	if authResp.Exp > 0 {
		tm.expiresAt = time.Unix(authResp.Exp, 0)
	} else {
		tm.expiresAt = time.Now().Add(tokenTTL)
	}

	logrus.WithField("expires_at", tm.expiresAt.Format(time.RFC3339)).
		Info("Token da Fudo obtido com sucesso")

	return tm.token, nil
}
