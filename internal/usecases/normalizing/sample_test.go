package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fudo-analytics-api/internal/domain"
)

func TestGenerateSampleSales_RespeitaOsLimites(t *testing.T) {
	dateRange := domain.DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
	}

	sales := GenerateSampleSales(dateRange)

	days := dateRange.Days()
	assert.GreaterOrEqual(t, len(sales), sampleMinSalesPerDay*days)
	assert.LessOrEqual(t, len(sales), sampleMaxSalesPerDay*days)

	for _, sale := range sales {
		createdAt, ok := sale.Field("createdAt")
		require.True(t, ok)

		parsed, err := time.Parse(time.RFC3339, createdAt.(string))
		require.NoError(t, err)

		assert.False(t, parsed.Before(dateRange.Start))
		assert.False(t, parsed.After(dateRange.End.Add(24*time.Hour)))
		assert.GreaterOrEqual(t, parsed.Hour(), sampleOpeningHour)
		assert.LessOrEqual(t, parsed.Hour(), sampleClosingHour)

		total, ok := sale.Field("total")
		require.True(t, ok)
		assert.GreaterOrEqual(t, total.(float64), sampleMinAmount)
		assert.LessOrEqual(t, total.(float64), sampleMaxAmount)

		assert.NotEmpty(t, sale.ID)
	}
}

func TestGenerateSampleSales_PassaPelaNormalizacao(t *testing.T) {
	dateRange := domain.DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
	}

	service := NewService("UTC")
	transactions, err := service.Normalize(GenerateSampleSales(dateRange))

	require.NoError(t, err)
	require.NotEmpty(t, transactions)

	for _, transaction := range transactions {
		assert.True(t, transaction.HasDatetime())
		assert.Greater(t, transaction.Amount, 0.0)
	}
}
