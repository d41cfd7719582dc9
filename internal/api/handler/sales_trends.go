package handler

import (
	"net/http"

	"github.com/vfg2006/fudo-analytics-api/internal/domain"
	"github.com/vfg2006/fudo-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/fudo-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/fudo-analytics-api/pkg/log"
)

// Períodos de agregação aceitos pela rota de tendências
const (
	TrendPeriodDay        = "day"
	TrendPeriodServiceDay = "service_day"
	TrendPeriodHour       = "hour"
	TrendPeriodMonth      = "month"
	TrendPeriodWeekday    = "weekday"
)

type TrendsResponse struct {
	Range  domain.DateRange  `json:"range"`
	Source domain.DataSource `json:"source"`
	Period string            `json:"period"`
	Series any               `json:"series"`
}

// GetSalesTrends retorna uma única série temporal do período, escolhida pelo
// parâmetro period. Aceita os mesmos parâmetros de período da rota de relatório
func GetSalesTrends(service reporting.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period := r.URL.Query().Get("period")
		if period == "" {
			period = TrendPeriodDay
		}

		dateRange, err := dateRangeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.FetchAndAnalyze(r.Context(), *dateRange)
		if err != nil {
			logger.WithError(err).Error("Erro ao gerar tendências de vendas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar tendências de vendas", nil)
			return
		}

		var series any
		switch period {
		case TrendPeriodDay:
			series = report.Metrics.Daily
		case TrendPeriodServiceDay:
			series = report.Metrics.ServiceDaily
		case TrendPeriodHour:
			series = report.Metrics.Hourly
		case TrendPeriodMonth:
			series = report.Metrics.Monthly
		case TrendPeriodWeekday:
			series = report.Metrics.Weekday
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Período inválido. Valores aceitos: day, service_day, hour, month, weekday", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(TrendsResponse{
			Range:  report.Range,
			Source: report.Source,
			Period: period,
			Series: series,
		})
		if err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}
