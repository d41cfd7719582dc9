package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/fudo-analytics-api/internal/domain"
)

// serviceDayCutoverHour delimita o "dia de serviço" do restaurante noturno:
// o dia vai de 12:00 até 04:59 do dia seguinte e toda a receita é atribuída
// ao dia em que o serviço começou
const serviceDayCutoverHour = 12

// Compute calcula o snapshot completo de métricas a partir do conjunto de
// transações. Função pura e determinística: o resultado independe da ordem
// de entrada. Transações sem horário conhecido entram nos totais, mas ficam
// fora das séries temporais
func Compute(transactions []domain.Transaction) *domain.MetricsSnapshot {
	snapshot := &domain.MetricsSnapshot{
		Daily:        []domain.DailySales{},
		ServiceDaily: []domain.DailySales{},
		Hourly:       []domain.HourlySales{},
		Monthly:      []domain.MonthlySales{},
		Weekday:      []domain.WeekdaySales{},
	}

	if len(transactions) == 0 {
		return snapshot
	}

	amounts := make([]float64, 0, len(transactions))
	var total float64
	for _, transaction := range transactions {
		total += transaction.Amount
		amounts = append(amounts, transaction.Amount)
	}

	snapshot.TotalSales = total
	snapshot.TransactionCount = len(transactions)
	snapshot.AverageTicket = total / float64(len(transactions))
	snapshot.MedianTicket = median(amounts)

	snapshot.Daily = groupByDay(transactions, calendarDay)
	snapshot.ServiceDaily = groupByDay(transactions, serviceDay)
	snapshot.Hourly = groupByHour(transactions)
	snapshot.Monthly = groupByMonth(transactions)
	snapshot.Weekday = groupByWeekday(transactions)

	snapshot.BestDay, snapshot.WorstDay = dayHighlights(snapshot.Daily)
	snapshot.BestHour = hourHighlight(snapshot.Hourly)

	return snapshot
}

// median calcula a mediana estatística. Para quantidade par, a média dos
// dois valores centrais
func median(amounts []float64) float64 {
	sorted := make([]float64, len(amounts))
	copy(sorted, amounts)
	sort.Float64s(sorted)

	middle := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[middle-1] + sorted[middle]) / 2
	}
	return sorted[middle]
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// serviceDay atribui o horário ao dia de serviço: vendas antes do meio-dia
// pertencem ao serviço que começou no dia anterior
func serviceDay(t time.Time) time.Time {
	day := calendarDay(t)
	if t.Hour() < serviceDayCutoverHour {
		return day.AddDate(0, 0, -1)
	}
	return day
}

type bucket struct {
	total float64
	count int
}

func (b *bucket) add(amount float64) {
	b.total += amount
	b.count++
}

func (b *bucket) average() float64 {
	if b.count == 0 {
		return 0
	}
	return b.total / float64(b.count)
}

func groupByDay(transactions []domain.Transaction, attribution func(time.Time) time.Time) []domain.DailySales {
	buckets := make(map[time.Time]*bucket)
	for _, transaction := range transactions {
		if !transaction.HasDatetime() {
			continue
		}

		day := attribution(transaction.Datetime)
		if buckets[day] == nil {
			buckets[day] = &bucket{}
		}
		buckets[day].add(transaction.Amount)
	}

	series := make([]domain.DailySales, 0, len(buckets))
	for day, b := range buckets {
		series = append(series, domain.DailySales{
			Date:         day,
			TotalSales:   b.total,
			AverageSale:  b.average(),
			Transactions: b.count,
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}

func groupByHour(transactions []domain.Transaction) []domain.HourlySales {
	buckets := make(map[int]*bucket)
	for _, transaction := range transactions {
		if !transaction.HasDatetime() {
			continue
		}

		hour := transaction.Datetime.Hour()
		if buckets[hour] == nil {
			buckets[hour] = &bucket{}
		}
		buckets[hour].add(transaction.Amount)
	}

	series := make([]domain.HourlySales, 0, len(buckets))
	for hour, b := range buckets {
		series = append(series, domain.HourlySales{
			Hour:         hour,
			Label:        hourLabel(hour),
			DisplayOrder: displayOrder(hour),
			TotalSales:   b.total,
			AverageSale:  b.average(),
			Transactions: b.count,
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Hour < series[j].Hour
	})

	return series
}

func hourLabel(hour int) string {
	return time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("15:04")
}

// displayOrder reordena as horas para exibição começando ao meio-dia
// (12, 13, ..., 23, 0, ..., 11), acompanhando o dia de serviço
func displayOrder(hour int) int {
	if hour >= serviceDayCutoverHour {
		return hour
	}
	return hour + 24
}

func groupByMonth(transactions []domain.Transaction) []domain.MonthlySales {
	buckets := make(map[string]*bucket)
	for _, transaction := range transactions {
		if !transaction.HasDatetime() {
			continue
		}

		month := transaction.Datetime.Format("2006-01")
		if buckets[month] == nil {
			buckets[month] = &bucket{}
		}
		buckets[month].add(transaction.Amount)
	}

	series := make([]domain.MonthlySales, 0, len(buckets))
	for month, b := range buckets {
		series = append(series, domain.MonthlySales{
			Month:        month,
			TotalSales:   b.total,
			AverageSale:  b.average(),
			Transactions: b.count,
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})

	return series
}

func groupByWeekday(transactions []domain.Transaction) []domain.WeekdaySales {
	buckets := make(map[time.Weekday]*bucket)
	for _, transaction := range transactions {
		if !transaction.HasDatetime() {
			continue
		}

		weekday := serviceDay(transaction.Datetime).Weekday()
		if buckets[weekday] == nil {
			buckets[weekday] = &bucket{}
		}
		buckets[weekday].add(transaction.Amount)
	}

	// Ordenação começando na segunda-feira
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}

	series := make([]domain.WeekdaySales, 0, len(buckets))
	for _, weekday := range order {
		b, ok := buckets[weekday]
		if !ok {
			continue
		}

		series = append(series, domain.WeekdaySales{
			Weekday:      weekday,
			Label:        weekday.String(),
			TotalSales:   b.total,
			AverageSale:  b.average(),
			Transactions: b.count,
		})
	}

	return series
}

// dayHighlights encontra o melhor e o pior dia entre os dias com vendas.
// Empates ficam com a data mais antiga, garantido pela série ordenada e
// comparação estrita
func dayHighlights(daily []domain.DailySales) (*domain.DayHighlight, *domain.DayHighlight) {
	var best, worst *domain.DayHighlight

	for _, day := range daily {
		if day.TotalSales <= 0 {
			continue
		}

		if best == nil || day.TotalSales > best.TotalSales {
			best = &domain.DayHighlight{Date: day.Date, TotalSales: day.TotalSales}
		}
		if worst == nil || day.TotalSales < worst.TotalSales {
			worst = &domain.DayHighlight{Date: day.Date, TotalSales: day.TotalSales}
		}
	}

	return best, worst
}

// hourHighlight encontra a hora com maior receita. Empates ficam com a menor
// hora, garantido pela série ordenada e comparação estrita
func hourHighlight(hourly []domain.HourlySales) *domain.HourHighlight {
	var best *domain.HourHighlight

	for _, hour := range hourly {
		if best == nil || hour.TotalSales > best.TotalSales {
			best = &domain.HourHighlight{Hour: hour.Hour, TotalSales: hour.TotalSales}
		}
	}

	return best
}
