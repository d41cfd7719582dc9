package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFudoEnvironment(t *testing.T) {
	tests := []struct {
		name            string
		fudo            Fudo
		expectedAPIURL  string
		expectedAuthURL string
	}{
		{
			name:            "Produção usa as URLs oficiais",
			fudo:            Fudo{Environment: "production"},
			expectedAPIURL:  productionAPIURL,
			expectedAuthURL: productionAuthURL,
		},
		{
			name:            "Staging usa as URLs de staging",
			fudo:            Fudo{Environment: "staging"},
			expectedAPIURL:  stagingAPIURL,
			expectedAuthURL: stagingAuthURL,
		},
		{
			name: "URLs explícitas têm prioridade sobre o ambiente",
			fudo: Fudo{
				Environment: "production",
				APIURL:      "http://localhost:9000",
				AuthURL:     "http://localhost:9001",
			},
			expectedAPIURL:  "http://localhost:9000",
			expectedAuthURL: "http://localhost:9001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applyFudoEnvironment(&tt.fudo)

			assert.Equal(t, tt.expectedAPIURL, tt.fudo.APIURL)
			assert.Equal(t, tt.expectedAuthURL, tt.fudo.AuthURL)
		})
	}
}

func TestApplyFudoEnvironment_LimitaOTamanhoDaPagina(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		expected int
	}{
		{name: "Zero cai no máximo da API", pageSize: 0, expected: MaxPageSize},
		{name: "Acima do limite é saturado", pageSize: 2000, expected: MaxPageSize},
		{name: "Valor válido é preservado", pageSize: 100, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fudo := Fudo{PageSize: tt.pageSize}
			applyFudoEnvironment(&fudo)

			assert.Equal(t, tt.expected, fudo.PageSize)
		})
	}
}

func TestFudo_HasCredentials(t *testing.T) {
	assert.True(t, Fudo{APIKey: "k", APISecret: "s"}.HasCredentials())
	assert.False(t, Fudo{APIKey: "k"}.HasCredentials())
	assert.False(t, Fudo{APISecret: "s"}.HasCredentials())
	assert.False(t, Fudo{}.HasCredentials())
}
