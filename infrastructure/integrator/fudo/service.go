package fudo

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fudo-analytics-api/internal/config"
	"github.com/vfg2006/fudo-analytics-api/internal/domain"

	fudodomain "github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/domain"
	"github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/fudoclient"
)

type FudoIntegrator interface {
	GetSalesByPeriod(ctx context.Context, dateRange domain.DateRange) ([]fudodomain.Sale, error)
	CheckConnection(ctx context.Context) (bool, error)
}

type FudoService struct {
	cfg    *config.Config
	Client fudoclient.Client
}

func New(cfg *config.Config, client fudoclient.Client) FudoIntegrator {
	return &FudoService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *FudoService) GetSalesByPeriod(ctx context.Context, dateRange domain.DateRange) ([]fudodomain.Sale, error) {
	start := time.Now()

	sales, err := s.Client.GetSales(ctx, dateRange)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"start_date": dateRange.Start.Format(time.DateOnly),
		"end_date":   dateRange.End.Format(time.DateOnly),
		"records":    len(sales),
		"duration":   time.Since(start).String(),
	}).Info("Vendas obtidas da API da Fudo")

	return sales, nil
}

// CheckConnection valida credenciais e conectividade consultando as vendas
// de ontem, sem usar o resultado
func (s *FudoService) CheckConnection(ctx context.Context) (bool, error) {
	yesterday := time.Now().AddDate(0, 0, -1)

	dateRange, err := domain.NewDateRange(yesterday, yesterday)
	if err != nil {
		return false, err
	}

	if _, err := s.Client.GetSales(ctx, dateRange); err != nil {
		return false, err
	}

	return true, nil
}
