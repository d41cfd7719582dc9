package reporting

import (
	"context"

	"github.com/vfg2006/fudo-analytics-api/internal/domain"
)

// Analyzer é o ponto de entrada do pipeline de análise: busca as vendas do
// período, normaliza e calcula as métricas em uma única chamada
type Analyzer interface {
	FetchAndAnalyze(ctx context.Context, dateRange domain.DateRange) (*domain.SalesReport, error)
	FetchAndAnalyzeLastDays(ctx context.Context, days int) (*domain.SalesReport, error)
}
