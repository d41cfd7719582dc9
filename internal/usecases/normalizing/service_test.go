package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fudodomain "github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/domain"
)

func TestNormalize_SemRegistrosRetornaErrNoData(t *testing.T) {
	service := NewService("UTC")

	transactions, err := service.Normalize(nil)

	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, transactions)
}

func TestNormalize_RegistroCompleto(t *testing.T) {
	service := NewService("UTC")

	sales := []fudodomain.Sale{
		{
			ID:   "42",
			Type: "sales",
			Attributes: map[string]any{
				"createdAt": "2024-03-10T21:30:00Z",
				"total":     150.75,
			},
		},
	}

	transactions, err := service.Normalize(sales)
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	assert.Equal(t, "42", transactions[0].ID)
	assert.Equal(t, 150.75, transactions[0].Amount)
	assert.True(t, transactions[0].HasDatetime())
	assert.Equal(t, 21, transactions[0].Datetime.Hour())
}

func TestNormalize_NuncaFalhaComRegistroMalformado(t *testing.T) {
	service := NewService("UTC")

	tests := []struct {
		name string
		sale fudodomain.Sale
	}{
		{
			name: "Registro sem nenhum atributo",
			sale: fudodomain.Sale{ID: "1"},
		},
		{
			name: "Data não parseável",
			sale: fudodomain.Sale{ID: "2", Attributes: map[string]any{"createdAt": "não é uma data", "total": 10.0}},
		},
		{
			name: "Valor com tipo inesperado",
			sale: fudodomain.Sale{ID: "3", Attributes: map[string]any{"createdAt": "2024-03-10T12:00:00Z", "total": []any{1, 2}}},
		},
		{
			name: "Atributos com tipos trocados",
			sale: fudodomain.Sale{ID: "4", Attributes: map[string]any{"createdAt": 12.5, "total": "abc"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions, err := service.Normalize([]fudodomain.Sale{tt.sale})

			require.NoError(t, err)
			require.Len(t, transactions, 1)
			assert.GreaterOrEqual(t, transactions[0].Amount, 0.0)
		})
	}
}

func TestNormalize_DataNaoParseavelViraSentinela(t *testing.T) {
	service := NewService("UTC")

	sales := []fudodomain.Sale{
		{ID: "1", Attributes: map[string]any{"createdAt": "ontem à noite", "total": 30.0}},
	}

	transactions, err := service.Normalize(sales)
	require.NoError(t, err)

	assert.False(t, transactions[0].HasDatetime())
	assert.Equal(t, 30.0, transactions[0].Amount)
}

func TestNormalize_PrioridadeDosCamposDeData(t *testing.T) {
	service := NewService("UTC")

	// createdAt tem prioridade sobre datetime
	sales := []fudodomain.Sale{
		{
			ID: "1",
			Attributes: map[string]any{
				"createdAt": "2024-03-10T10:00:00Z",
				"datetime":  "2024-01-01T00:00:00Z",
				"total":     10.0,
			},
		},
	}

	transactions, err := service.Normalize(sales)
	require.NoError(t, err)

	assert.Equal(t, time.March, transactions[0].Datetime.Month())
}

func TestNormalize_CampoDeDataInvalidoTentaOsAlternativos(t *testing.T) {
	service := NewService("UTC")

	sales := []fudodomain.Sale{
		{
			ID: "1",
			Attributes: map[string]any{
				"createdAt": "inválido",
				"date":      "2024-03-10",
				"total":     10.0,
			},
		},
	}

	transactions, err := service.Normalize(sales)
	require.NoError(t, err)

	assert.True(t, transactions[0].HasDatetime())
	assert.Equal(t, 10, transactions[0].Datetime.Day())
}

func TestNormalize_PrioridadeDosCamposDeValor(t *testing.T) {
	service := NewService("UTC")

	tests := []struct {
		name       string
		attributes map[string]any
		expected   float64
	}{
		{
			name:       "total tem prioridade sobre amount",
			attributes: map[string]any{"total": 100.0, "amount": 50.0},
			expected:   100.0,
		},
		{
			name:       "amount é usado na ausência de total",
			attributes: map[string]any{"amount": 50.0},
			expected:   50.0,
		},
		{
			name:       "Valor em string é convertido",
			attributes: map[string]any{"total": "75.25"},
			expected:   75.25,
		},
		{
			name:       "Objeto monetário usa o campo value",
			attributes: map[string]any{"total": map[string]any{"currency": "ARS", "value": 80.0}},
			expected:   80.0,
		},
		{
			name:       "Valor negativo é saturado em zero",
			attributes: map[string]any{"total": -10.0},
			expected:   0,
		},
		{
			name:       "Sem campo de valor o total é zero",
			attributes: map[string]any{"createdAt": "2024-03-10T12:00:00Z"},
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales := []fudodomain.Sale{{ID: "1", Attributes: tt.attributes}}

			transactions, err := service.Normalize(sales)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, transactions[0].Amount)
		})
	}
}

func TestNormalize_IDAusenteUsaPosicao(t *testing.T) {
	service := NewService("UTC")

	sales := []fudodomain.Sale{
		{Attributes: map[string]any{"total": 10.0}},
		{Attributes: map[string]any{"total": 20.0}},
	}

	transactions, err := service.Normalize(sales)
	require.NoError(t, err)

	assert.Equal(t, "1", transactions[0].ID)
	assert.Equal(t, "2", transactions[1].ID)
}

func TestNormalize_ConverteParaFusoConfigurado(t *testing.T) {
	service := NewService("America/Argentina/Buenos_Aires")

	sales := []fudodomain.Sale{
		{ID: "1", Attributes: map[string]any{"createdAt": "2024-03-10T21:00:00Z", "total": 10.0}},
	}

	transactions, err := service.Normalize(sales)
	require.NoError(t, err)

	// UTC-3 durante o ano inteiro na Argentina
	assert.Equal(t, 18, transactions[0].Datetime.Hour())
}

func TestNormalize_FusoInvalidoCaiEmUTC(t *testing.T) {
	service := NewService("Planeta/Marte")

	sales := []fudodomain.Sale{
		{ID: "1", Attributes: map[string]any{"createdAt": "2024-03-10T21:00:00Z", "total": 10.0}},
	}

	transactions, err := service.Normalize(sales)
	require.NoError(t, err)

	assert.Equal(t, 21, transactions[0].Datetime.Hour())
}
