package fudoclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fudo-analytics-api/internal/config"
	"github.com/vfg2006/fudo-analytics-api/internal/domain"

	fudodomain "github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/domain"
)

func salesTestConfig(apiURL, authURL string, pageSize, maxRetries int) *config.Config {
	return &config.Config{
		Fudo: config.Fudo{
			APIURL:     apiURL,
			AuthURL:    authURL,
			APIKey:     "chave",
			APISecret:  "segredo",
			PageSize:   pageSize,
			MaxRetries: maxRetries,
		},
	}
}

// newAuthServer sobe um endpoint de autenticação que sempre emite o token informado
func newAuthServer(t *testing.T, token string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"token": token})
	}))
}

func salesPage(count, offset int) []map[string]any {
	page := make([]map[string]any, count)
	for i := range page {
		page[i] = map[string]any{
			"id":   strconv.Itoa(offset + i + 1),
			"type": "sales",
			"attributes": map[string]any{
				"createdAt": "2024-03-10T14:00:00Z",
				"total":     10.0,
			},
		}
	}
	return page
}

func testDateRange(t *testing.T) domain.DateRange {
	t.Helper()

	dateRange, err := domain.NewDateRange(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return dateRange
}

func TestGetSales_PercorreTodasAsPaginas(t *testing.T) {
	authServer := newAuthServer(t, "token-abc")
	defer authServer.Close()

	var requests int
	pages := map[string]int{"1": 500, "2": 500, "3": 200}

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		assert.Equal(t, "/sales", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		query := r.URL.Query()
		assert.Equal(t, "and(gte.2024-03-01T00:00:00Z,lte.2024-03-31T23:59:59Z)", query.Get("filter[createdAt]"))
		assert.Equal(t, "500", query.Get("page[size]"))

		pageNumber := query.Get("page[number]")
		count := pages[pageNumber]

		json.NewEncoder(w).Encode(map[string]any{"data": salesPage(count, 0)})
	}))
	defer apiServer.Close()

	cfg := salesTestConfig(apiServer.URL, authServer.URL, 500, 3)
	client := NewClient(cfg, NewTokenManager(cfg))

	sales, err := client.GetSales(context.Background(), testDateRange(t))

	require.NoError(t, err)
	assert.Len(t, sales, 1200)
	assert.Equal(t, 3, requests, "página curta encerra a travessia sem requisição extra")
}

func TestGetSales_PaginaVaziaEncerraATravessia(t *testing.T) {
	authServer := newAuthServer(t, "token-abc")
	defer authServer.Close()

	var requests int
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer apiServer.Close()

	cfg := salesTestConfig(apiServer.URL, authServer.URL, 500, 3)
	client := NewClient(cfg, NewTokenManager(cfg))

	sales, err := client.GetSales(context.Background(), testDateRange(t))

	require.NoError(t, err)
	assert.Empty(t, sales)
	assert.Equal(t, 1, requests)
}

func TestGetSales_TokenExpiradoRenovaERepeteAPagina(t *testing.T) {
	var tokens int
	authServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens++
		json.NewEncoder(w).Encode(map[string]any{"token": fmt.Sprintf("token-%d", tokens)})
	}))
	defer authServer.Close()

	var page2Requests int
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pageNumber := r.URL.Query().Get("page[number]")

		// O primeiro token expira no meio da travessia: a página 2 só
		// responde para o token renovado
		if pageNumber == "2" {
			page2Requests++
			if r.Header.Get("Authorization") == "Bearer token-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			json.NewEncoder(w).Encode(map[string]any{"data": salesPage(10, 500)})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{"data": salesPage(500, 0)})
	}))
	defer apiServer.Close()

	cfg := salesTestConfig(apiServer.URL, authServer.URL, 500, 3)
	client := NewClient(cfg, NewTokenManager(cfg))

	sales, err := client.GetSales(context.Background(), testDateRange(t))

	require.NoError(t, err)
	assert.Len(t, sales, 510, "a página repetida após renovação deve entrar no resultado")
	assert.Equal(t, 2, page2Requests)
	assert.Equal(t, 2, tokens)
}

func TestGetSales_RejeicaoAposRenovacaoRetornaAuthError(t *testing.T) {
	authServer := newAuthServer(t, "token-abc")
	defer authServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer apiServer.Close()

	cfg := salesTestConfig(apiServer.URL, authServer.URL, 500, 3)
	client := NewClient(cfg, NewTokenManager(cfg))

	_, err := client.GetSales(context.Background(), testDateRange(t))

	require.Error(t, err)
	assert.True(t, domain.IsAuthError(err))
	assert.False(t, domain.IsFetchError(err))
}

func TestGetSales_ErroTransitorioTentaNovamente(t *testing.T) {
	authServer := newAuthServer(t, "token-abc")
	defer authServer.Close()

	var requests int
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(map[string]any{"data": salesPage(3, 0)})
	}))
	defer apiServer.Close()

	cfg := salesTestConfig(apiServer.URL, authServer.URL, 500, 3)
	client := NewClient(cfg, NewTokenManager(cfg))

	sales, err := client.GetSales(context.Background(), testDateRange(t))

	require.NoError(t, err)
	assert.Len(t, sales, 3)
	assert.Equal(t, 3, requests)
}

func TestGetSales_EsgotarRetriesRetornaFetchError(t *testing.T) {
	authServer := newAuthServer(t, "token-abc")
	defer authServer.Close()

	var requests int
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer apiServer.Close()

	cfg := salesTestConfig(apiServer.URL, authServer.URL, 500, 1)
	client := NewClient(cfg, NewTokenManager(cfg))

	_, err := client.GetSales(context.Background(), testDateRange(t))

	require.Error(t, err)
	assert.True(t, domain.IsFetchError(err))

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 1, fetchErr.Page)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	assert.Equal(t, 2, requests, "uma tentativa original mais o retry configurado")
}

func TestGetSales_ErroDeClienteFalhaImediatamente(t *testing.T) {
	authServer := newAuthServer(t, "token-abc")
	defer authServer.Close()

	var requests int
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer apiServer.Close()

	cfg := salesTestConfig(apiServer.URL, authServer.URL, 500, 3)
	client := NewClient(cfg, NewTokenManager(cfg))

	_, err := client.GetSales(context.Background(), testDateRange(t))

	require.Error(t, err)
	assert.True(t, domain.IsFetchError(err))
	assert.Equal(t, 1, requests, "4xx não deve gerar retry")
}

func TestStreamSales_EntregaCadaPaginaAoCallback(t *testing.T) {
	authServer := newAuthServer(t, "token-abc")
	defer authServer.Close()

	pages := map[string]int{"1": 500, "2": 120}
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := pages[r.URL.Query().Get("page[number]")]
		json.NewEncoder(w).Encode(map[string]any{"data": salesPage(count, 0)})
	}))
	defer apiServer.Close()

	cfg := salesTestConfig(apiServer.URL, authServer.URL, 500, 3)
	client := NewClient(cfg, NewTokenManager(cfg))

	var pageSizes []int
	err := client.StreamSales(context.Background(), testDateRange(t), func(page []fudodomain.Sale) error {
		pageSizes = append(pageSizes, len(page))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{500, 120}, pageSizes)
}

func TestGetSales_DecodificaListaSemEnvelope(t *testing.T) {
	authServer := newAuthServer(t, "token-abc")
	defer authServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(salesPage(2, 0))
	}))
	defer apiServer.Close()

	cfg := salesTestConfig(apiServer.URL, authServer.URL, 500, 3)
	client := NewClient(cfg, NewTokenManager(cfg))

	sales, err := client.GetSales(context.Background(), testDateRange(t))

	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "1", sales[0].ID)

	total, ok := sales[0].Field("total")
	require.True(t, ok)
	assert.Equal(t, 10.0, total)
}
