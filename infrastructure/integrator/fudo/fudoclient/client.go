package fudoclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/fudo-analytics-api/internal/config"
	"github.com/vfg2006/fudo-analytics-api/internal/domain"

	fudodomain "github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/domain"
)

type Client interface {
	GetSales(ctx context.Context, dateRange domain.DateRange) ([]fudodomain.Sale, error)
	StreamSales(ctx context.Context, dateRange domain.DateRange, fn func(page []fudodomain.Sale) error) error
}

type FudoClient struct {
	httpClient   *http.Client
	config       *config.Config
	tokenManager *TokenManager
}

// NewClient cria uma nova instância do cliente da API da Fudo
func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &FudoClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config:       cfg,
		tokenManager: tokenManager,
	}
}
