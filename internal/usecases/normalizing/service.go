package normalizing

import (
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fudo-analytics-api/internal/domain"

	fudodomain "github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/domain"
)

// ErrNoData sinaliza que não havia nenhum registro para normalizar. O
// chamador decide se substitui por dados de exemplo em vez de seguir com um
// conjunto vazio silencioso
var ErrNoData = errors.New("nenhum dado de vendas disponível")

// timestampKeys são os nomes candidatos do campo de data, em ordem de
// prioridade. O esquema da Fudo já mudou entre versões, então toleramos as
// variações conhecidas
var timestampKeys = []string{"createdAt", "datetime", "date", "created_at", "created"}

// amountKeys são os nomes candidatos do campo de valor, em ordem de prioridade
var amountKeys = []string{"total", "totalAmount", "amount", "total_amount", "price", "value"}

// timestampLayouts são os formatos de data aceitos, testados em ordem
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

type Normalizer interface {
	Normalize(sales []fudodomain.Sale) ([]domain.Transaction, error)
}

type Service struct {
	location *time.Location
}

// NewService cria um normalizador que converte os horários para o fuso
// informado (os timestamps da API chegam em UTC). Fuso inválido cai em UTC
func NewService(timezone string) Normalizer {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		logrus.WithField("timezone", timezone).
			Warn("Fuso horário inválido. Usando UTC")
		location = time.UTC
	}

	return &Service{location: location}
}

// Normalize converte registros brutos da Fudo em transações canônicas.
// É uma função total: registros malformados degradam para os valores padrão
// (horário sentinela, valor zero) em vez de gerar erro. Apenas a ausência
// completa de registros retorna ErrNoData
func (s *Service) Normalize(sales []fudodomain.Sale) ([]domain.Transaction, error) {
	if len(sales) == 0 {
		return nil, ErrNoData
	}

	transactions := make([]domain.Transaction, 0, len(sales))
	for i, sale := range sales {
		transactions = append(transactions, s.normalizeOne(sale, i))
	}

	return transactions, nil
}

func (s *Service) normalizeOne(sale fudodomain.Sale, index int) domain.Transaction {
	transaction := domain.Transaction{ID: sale.ID}
	if transaction.ID == "" {
		transaction.ID = strconv.Itoa(index + 1)
	}

	transaction.Datetime = s.extractDatetime(sale)
	transaction.Amount = extractAmount(sale)

	return transaction
}

// extractDatetime avalia os campos candidatos de data em ordem de prioridade.
// Campo presente mas não parseável não interrompe a busca: os alternativos
// ainda são tentados antes de cair no sentinela
func (s *Service) extractDatetime(sale fudodomain.Sale) time.Time {
	for _, key := range timestampKeys {
		value, ok := sale.Field(key)
		if !ok {
			continue
		}

		if parsed, ok := parseTimestamp(value); ok {
			return parsed.In(s.location)
		}
	}

	return time.Time{}
}

func parseTimestamp(value any) (time.Time, bool) {
	switch v := value.(type) {
	case string:
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed, true
			}
		}
	case float64:
		// Epoch em segundos
		if v > 0 {
			return time.Unix(int64(v), 0), true
		}
	case time.Time:
		return v, true
	}

	return time.Time{}, false
}

// extractAmount avalia os campos candidatos de valor em ordem de prioridade,
// coagindo para um número não negativo. Sem campo utilizável, o valor é zero
func extractAmount(sale fudodomain.Sale) float64 {
	for _, key := range amountKeys {
		value, ok := sale.Field(key)
		if !ok {
			continue
		}

		if amount, ok := coerceAmount(value); ok {
			if amount < 0 {
				return 0
			}
			return amount
		}
	}

	return 0
}

func coerceAmount(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed, true
		}
	case map[string]any:
		// Formato de objeto monetário: {"currency": "ARS", "value": 100}
		if inner, ok := v["value"]; ok {
			return coerceAmount(inner)
		}
	}

	return 0, false
}
