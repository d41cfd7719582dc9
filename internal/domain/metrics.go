package domain

import "time"

// DailySales agrega as vendas de um único dia
type DailySales struct {
	Date         time.Time `json:"date"`
	TotalSales   float64   `json:"total_sales"`
	AverageSale  float64   `json:"avg_sale"`
	Transactions int       `json:"num_transactions"`
}

// HourlySales agrega as vendas de uma hora do dia (0-23).
// DisplayOrder reordena a série para exibição começando ao meio-dia,
// que é como o gráfico do restaurante noturno é apresentado
type HourlySales struct {
	Hour         int     `json:"hour"`
	Label        string  `json:"hour_label"`
	DisplayOrder int     `json:"hour_order"`
	TotalSales   float64 `json:"total_sales"`
	AverageSale  float64 `json:"avg_sale"`
	Transactions int     `json:"num_transactions"`
}

// MonthlySales agrega as vendas de um mês calendário, no formato YYYY-MM
type MonthlySales struct {
	Month        string  `json:"month"`
	TotalSales   float64 `json:"total_sales"`
	AverageSale  float64 `json:"avg_sale"`
	Transactions int     `json:"num_transactions"`
}

// WeekdaySales agrega as vendas por dia da semana do dia de serviço
type WeekdaySales struct {
	Weekday      time.Weekday `json:"-"`
	Label        string       `json:"weekday"`
	TotalSales   float64      `json:"total_sales"`
	AverageSale  float64      `json:"avg_sale"`
	Transactions int          `json:"num_transactions"`
}

// DayHighlight identifica o melhor ou pior dia do período
type DayHighlight struct {
	Date       time.Time `json:"date"`
	TotalSales float64   `json:"sales"`
}

// HourHighlight identifica a melhor hora do período
type HourHighlight struct {
	Hour       int     `json:"hour"`
	TotalSales float64 `json:"sales"`
}

// MetricsSnapshot é o conjunto completo de métricas calculado a partir de um
// conjunto de transações. É um valor imutável: recalculado do zero a cada
// análise, nunca atualizado em memória
type MetricsSnapshot struct {
	TotalSales       float64        `json:"total_sales"`
	TransactionCount int            `json:"transaction_count"`
	AverageTicket    float64        `json:"average_ticket"`
	MedianTicket     float64        `json:"median_ticket"`

	BestDay  *DayHighlight  `json:"best_day,omitempty"`
	WorstDay *DayHighlight  `json:"worst_day,omitempty"`
	BestHour *HourHighlight `json:"best_hour,omitempty"`

	// Daily agrupa por dia calendário; ServiceDaily agrupa pelo "dia de
	// serviço" do restaurante, que vai de 12:00 até 04:59 do dia seguinte
	Daily        []DailySales   `json:"daily"`
	ServiceDaily []DailySales   `json:"service_daily"`
	Hourly       []HourlySales  `json:"hourly"`
	Monthly      []MonthlySales `json:"monthly"`
	Weekday      []WeekdaySales `json:"weekday"`
}

// SalesReport é a resposta da análise de um período: as métricas calculadas
// mais a procedência dos dados, para que o frontend possa sinalizar quando
// está exibindo dados de exemplo
type SalesReport struct {
	Range       DateRange        `json:"range"`
	Source      DataSource       `json:"source"`
	Metrics     *MetricsSnapshot `json:"metrics"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// IsSample informa se o relatório foi montado com dados sintéticos
func (r *SalesReport) IsSample() bool {
	return r.Source == DataSourceSample
}
