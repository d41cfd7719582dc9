package domain

import "time"

// DataSource indica a procedência dos dados de um relatório
type DataSource string

const (
	// DataSourceAPI indica dados reais obtidos da API da Fudo
	DataSourceAPI DataSource = "api"
	// DataSourceSample indica dados sintéticos de exemplo, usados quando
	// a API está indisponível ou sem credenciais configuradas
	DataSourceSample DataSource = "sample"
)

// Transaction é a representação canônica de uma venda, usada por toda a
// camada de análise independentemente do formato bruto retornado pela API
type Transaction struct {
	ID       string    `json:"id"`
	Datetime time.Time `json:"datetime"`
	Amount   float64   `json:"amount"`
}

// HasDatetime informa se a transação possui um horário conhecido.
// Transações com timestamp não parseável carregam o valor zero de time.Time
// como sentinela: entram nos totais, mas ficam fora das séries temporais
func (t Transaction) HasDatetime() bool {
	return !t.Datetime.IsZero()
}
