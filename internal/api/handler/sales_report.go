package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/fudo-analytics-api/internal/domain"
	"github.com/vfg2006/fudo-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/fudo-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/fudo-analytics-api/pkg/log"
	"github.com/vfg2006/fudo-analytics-api/pkg/utils"
)

const defaultReportDays = 30

var (
	errInvalidDays      = errors.New("parâmetro days deve ser um inteiro positivo")
	errInvalidStartDate = errors.New("start_date inválida, use o formato YYYY-MM-DD")
	errInvalidEndDate   = errors.New("end_date inválida, use o formato YYYY-MM-DD")
)

// GetSalesReport retorna o relatório completo de métricas de vendas do
// período. O período vem de start_date/end_date (YYYY-MM-DD) ou do atalho
// days=N; sem parâmetros, os últimos 30 dias
func GetSalesReport(service reporting.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dateRange, err := dateRangeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.FetchAndAnalyze(r.Context(), *dateRange)
		if err != nil {
			logger.WithError(err).Error("Erro ao gerar relatório de vendas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório de vendas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date":   dateRange.Start.Format(time.DateOnly),
			"end_date":     dateRange.End.Format(time.DateOnly),
			"source":       report.Source,
			"transactions": report.Metrics.TransactionCount,
		}).Info("Relatório de vendas gerado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// dateRangeFromQuery resolve o período da análise a partir da query string
func dateRangeFromQuery(r *http.Request) (*domain.DateRange, error) {
	query := r.URL.Query()

	if daysStr := query.Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days <= 0 {
			return nil, errInvalidDays
		}

		dateRange := domain.LastDays(days)
		return &dateRange, nil
	}

	startStr := query.Get("start_date")
	endStr := query.Get("end_date")
	if startStr == "" && endStr == "" {
		dateRange := domain.LastDays(defaultReportDays)
		return &dateRange, nil
	}

	start, err := utils.ParseDate(startStr)
	if err != nil {
		return nil, errInvalidStartDate
	}

	end, err := utils.ParseDate(endStr)
	if err != nil {
		return nil, errInvalidEndDate
	}

	// Ponta ausente assume o mesmo dia da outra
	if startStr == "" {
		start = end
	}
	if endStr == "" {
		end = start
	}

	dateRange, err := domain.NewDateRange(*start, *end)
	if err != nil {
		return nil, err
	}

	return &dateRange, nil
}
