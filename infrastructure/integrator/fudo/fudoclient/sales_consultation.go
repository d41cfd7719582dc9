package fudoclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fudo-analytics-api/internal/domain"

	fudodomain "github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/domain"
)

const initialBackoff = 500 * time.Millisecond

// GetSales busca todas as vendas do período, percorrendo todas as páginas e
// materializando o conjunto completo
func (c *FudoClient) GetSales(ctx context.Context, dateRange domain.DateRange) ([]fudodomain.Sale, error) {
	var all []fudodomain.Sale

	err := c.StreamSales(ctx, dateRange, func(page []fudodomain.Sale) error {
		all = append(all, page...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return all, nil
}

// StreamSales percorre as páginas do endpoint de vendas e entrega cada uma
// ao callback, sem reter as páginas anteriores. A travessia termina quando
// uma página retorna menos registros que o tamanho solicitado
func (c *FudoClient) StreamSales(ctx context.Context, dateRange domain.DateRange, fn func(page []fudodomain.Sale) error) error {
	pageSize := c.config.Fudo.PageSize

	for page := 1; ; page++ {
		records, err := c.fetchPage(ctx, dateRange, page, pageSize)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			return nil
		}

		if err := fn(records); err != nil {
			return err
		}

		if len(records) < pageSize {
			return nil
		}
	}
}

// fetchPage busca uma única página. Em falha de autenticação invalida o
// token e repete a mesma página uma única vez; uma segunda falha consecutiva
// é fatal. Erros transitórios (5xx e timeout) são repetidos com backoff
// exponencial até o limite configurado; os demais falham imediatamente
func (c *FudoClient) fetchPage(ctx context.Context, dateRange domain.DateRange, page, pageSize int) ([]fudodomain.Sale, error) {
	var (
		authRetried bool
		attempts    int
		backoff     = initialBackoff
	)

	for {
		records, statusCode, err := c.doPageRequest(ctx, dateRange, page, pageSize)

		// Falha na troca de credenciais propaga como está
		if err != nil && domain.IsAuthError(err) {
			return nil, err
		}

		if statusCode == http.StatusUnauthorized {
			if authRetried {
				return nil, domain.NewAuthError(statusCode, "token rejeitado novamente após renovação")
			}

			logrus.WithField("page", page).Warn("Token da Fudo expirado ou inválido. Renovando e repetindo a página")
			c.tokenManager.Invalidate()
			authRetried = true
			continue
		}

		if err == nil {
			return records, nil
		}

		transient := statusCode == 0 || statusCode >= http.StatusInternalServerError
		if transient && attempts < c.config.Fudo.MaxRetries {
			attempts++

			logrus.WithFields(logrus.Fields{
				"page":    page,
				"status":  statusCode,
				"attempt": attempts,
				"backoff": backoff.String(),
			}).Warn("Erro transitório ao buscar página de vendas. Tentando novamente")

			select {
			case <-ctx.Done():
				return nil, domain.NewFetchError(page, statusCode, ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
			continue
		}

		return nil, domain.NewFetchError(page, statusCode, err)
	}
}

// doPageRequest executa a requisição HTTP de uma página e decodifica a
// resposta. Retorna o status HTTP para o chamador decidir a política de retry
func (c *FudoClient) doPageRequest(ctx context.Context, dateRange domain.DateRange, page, pageSize int) ([]fudodomain.Sale, int, error) {
	token, err := c.tokenManager.GetValidToken(ctx)
	if err != nil {
		return nil, 0, err
	}

	endpoint, err := url.Parse(c.config.Fudo.APIURL)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/sales")

	query := endpoint.Query()
	query.Set("filter[createdAt]", createdAtFilter(dateRange))
	query.Set("page[size]", strconv.Itoa(pageSize))
	query.Set("page[number]", strconv.Itoa(page))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, resp.StatusCode, errors.Errorf("requisição falhou com status %s: %s", resp.Status, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "erro ao ler a resposta")
	}

	records, err := decodeSalesResponse(body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return records, resp.StatusCode, nil
}

// createdAtFilter monta a expressão de filtro de período da Fudo: uma
// conjunção de limite inferior e superior sobre o campo createdAt,
// com as duas pontas inclusivas
func createdAtFilter(dateRange domain.DateRange) string {
	start := dateRange.Start.Format(time.DateOnly) + "T00:00:00Z"
	end := dateRange.End.Format(time.DateOnly) + "T23:59:59Z"
	return "and(gte." + start + ",lte." + end + ")"
}

// decodeSalesResponse decodifica a página de vendas. A resposta pode vir em
// formatos diferentes: um objeto com "data" (JSON:API), "sales" ou "items",
// ou diretamente uma lista
func decodeSalesResponse(body []byte) ([]fudodomain.Sale, error) {
	var envelope struct {
		Data  []map[string]any `json:"data"`
		Sales []map[string]any `json:"sales"`
		Items []map[string]any `json:"items"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		for _, raws := range [][]map[string]any{envelope.Data, envelope.Sales, envelope.Items} {
			if len(raws) > 0 {
				return convertRawSales(raws), nil
			}
		}
		return nil, nil
	}

	var bare []map[string]any
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta de vendas")
	}

	return convertRawSales(bare), nil
}

func convertRawSales(raws []map[string]any) []fudodomain.Sale {
	sales := make([]fudodomain.Sale, 0, len(raws))
	for _, raw := range raws {
		sales = append(sales, fudodomain.SaleFromRaw(raw))
	}
	return sales
}
