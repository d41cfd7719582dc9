package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/mocks"
	"github.com/vfg2006/fudo-analytics-api/internal/config"
	"github.com/vfg2006/fudo-analytics-api/internal/domain"
	"github.com/vfg2006/fudo-analytics-api/internal/usecases/normalizing"
	"go.uber.org/mock/gomock"

	fudodomain "github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/domain"
)

func reportingTestConfig(withCredentials bool) *config.Config {
	cfg := &config.Config{
		ReportCache: config.ReportCache{TTLSeconds: 300, Enabled: true},
	}

	if withCredentials {
		cfg.Fudo = config.Fudo{APIKey: "chave", APISecret: "segredo"}
	}

	return cfg
}

func reportingTestRange(t *testing.T) domain.DateRange {
	t.Helper()

	dateRange, err := domain.NewDateRange(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return dateRange
}

func apiSale(id, createdAt string, total float64) fudodomain.Sale {
	return fudodomain.Sale{
		ID:   id,
		Type: "sales",
		Attributes: map[string]any{
			"createdAt": createdAt,
			"total":     total,
		},
	}
}

func TestFetchAndAnalyze_DadosReais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dateRange := reportingTestRange(t)

	mockFudo := mocks.NewMockFudoIntegrator(ctrl)
	mockFudo.EXPECT().
		GetSalesByPeriod(gomock.Any(), dateRange).
		Return([]fudodomain.Sale{
			apiSale("1", "2024-03-01T14:00:00Z", 100),
			apiSale("2", "2024-03-02T20:30:00Z", 50),
		}, nil)

	service := NewService(reportingTestConfig(true), mockFudo, normalizing.NewService("UTC"))

	report, err := service.FetchAndAnalyze(context.Background(), dateRange)

	require.NoError(t, err)
	assert.Equal(t, domain.DataSourceAPI, report.Source)
	assert.False(t, report.IsSample())
	assert.Equal(t, 2, report.Metrics.TransactionCount)
	assert.InDelta(t, 150.0, report.Metrics.TotalSales, 1e-9)
}

func TestFetchAndAnalyze_SemCredenciaisServeDadosDeExemplo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada esperada: sem credenciais a API nem é consultada
	mockFudo := mocks.NewMockFudoIntegrator(ctrl)

	service := NewService(reportingTestConfig(false), mockFudo, normalizing.NewService("UTC"))

	report, err := service.FetchAndAnalyze(context.Background(), reportingTestRange(t))

	require.NoError(t, err)
	assert.Equal(t, domain.DataSourceSample, report.Source)
	assert.True(t, report.IsSample())
	assert.Greater(t, report.Metrics.TransactionCount, 0)
}

func TestFetchAndAnalyze_FalhaDeAutenticacaoDegradaParaExemplo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dateRange := reportingTestRange(t)

	mockFudo := mocks.NewMockFudoIntegrator(ctrl)
	mockFudo.EXPECT().
		GetSalesByPeriod(gomock.Any(), dateRange).
		Return(nil, domain.NewAuthError(401, "credenciais rejeitadas"))

	service := NewService(reportingTestConfig(true), mockFudo, normalizing.NewService("UTC"))

	report, err := service.FetchAndAnalyze(context.Background(), dateRange)

	require.NoError(t, err, "falha na API não deve propagar erro ao chamador")
	assert.True(t, report.IsSample())
	assert.Greater(t, report.Metrics.TransactionCount, 0)
}

func TestFetchAndAnalyze_FalhaDeBuscaDegradaParaExemplo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dateRange := reportingTestRange(t)

	mockFudo := mocks.NewMockFudoIntegrator(ctrl)
	mockFudo.EXPECT().
		GetSalesByPeriod(gomock.Any(), dateRange).
		Return(nil, domain.NewFetchError(2, 503, nil))

	service := NewService(reportingTestConfig(true), mockFudo, normalizing.NewService("UTC"))

	report, err := service.FetchAndAnalyze(context.Background(), dateRange)

	require.NoError(t, err)
	assert.True(t, report.IsSample())
}

func TestFetchAndAnalyze_PeriodoSemVendasDegradaParaExemplo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dateRange := reportingTestRange(t)

	mockFudo := mocks.NewMockFudoIntegrator(ctrl)
	mockFudo.EXPECT().
		GetSalesByPeriod(gomock.Any(), dateRange).
		Return([]fudodomain.Sale{}, nil)

	service := NewService(reportingTestConfig(true), mockFudo, normalizing.NewService("UTC"))

	report, err := service.FetchAndAnalyze(context.Background(), dateRange)

	require.NoError(t, err)
	assert.True(t, report.IsSample())
}

func TestFetchAndAnalyze_CacheEvitaNovaBusca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dateRange := reportingTestRange(t)

	mockFudo := mocks.NewMockFudoIntegrator(ctrl)
	mockFudo.EXPECT().
		GetSalesByPeriod(gomock.Any(), dateRange).
		Return([]fudodomain.Sale{apiSale("1", "2024-03-01T14:00:00Z", 100)}, nil).
		Times(1)

	service := NewService(reportingTestConfig(true), mockFudo, normalizing.NewService("UTC")).WithCache()

	first, err := service.FetchAndAnalyze(context.Background(), dateRange)
	require.NoError(t, err)

	second, err := service.FetchAndAnalyze(context.Background(), dateRange)
	require.NoError(t, err)

	assert.Same(t, first, second, "dentro do TTL o relatório vem do cache")
}

func TestFetchAndAnalyze_CachePorPeriodo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	firstRange := reportingTestRange(t)
	secondRange, err := domain.NewDateRange(
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 7, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	mockFudo := mocks.NewMockFudoIntegrator(ctrl)
	mockFudo.EXPECT().
		GetSalesByPeriod(gomock.Any(), firstRange).
		Return([]fudodomain.Sale{apiSale("1", "2024-03-01T14:00:00Z", 100)}, nil)
	mockFudo.EXPECT().
		GetSalesByPeriod(gomock.Any(), secondRange).
		Return([]fudodomain.Sale{apiSale("2", "2024-04-01T14:00:00Z", 70)}, nil)

	service := NewService(reportingTestConfig(true), mockFudo, normalizing.NewService("UTC")).WithCache()

	first, err := service.FetchAndAnalyze(context.Background(), firstRange)
	require.NoError(t, err)

	second, err := service.FetchAndAnalyze(context.Background(), secondRange)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, first.Metrics.TotalSales, 1e-9)
	assert.InDelta(t, 70.0, second.Metrics.TotalSales, 1e-9)
}
