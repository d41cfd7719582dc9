package domain

import (
	"fmt"
	"time"
)

// DateRange representa um período de análise com datas inclusivas nas duas pontas
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// NewDateRange cria um período validado. As horas são descartadas,
// apenas a data importa
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)

	if end.Before(start) {
		return DateRange{}, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	return DateRange{Start: start, End: end}, nil
}

// LastDays cria um período terminando hoje e começando há N dias
func LastDays(days int) DateRange {
	end := truncateToDay(time.Now())
	return DateRange{
		Start: end.AddDate(0, 0, -days),
		End:   end,
	}
}

// Days retorna a quantidade de dias do período, contando as duas pontas
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Key retorna uma chave estável do período, usada pelo cache de relatórios
func (r DateRange) Key() string {
	return r.Start.Format(time.DateOnly) + ":" + r.End.Format(time.DateOnly)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
