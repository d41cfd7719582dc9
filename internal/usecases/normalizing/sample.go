package normalizing

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/vfg2006/fudo-analytics-api/internal/domain"
	"github.com/vfg2006/fudo-analytics-api/pkg/utils"

	fudodomain "github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/domain"
)

const (
	sampleMinSalesPerDay = 5
	sampleMaxSalesPerDay = 20
	sampleOpeningHour    = 8
	sampleClosingHour    = 22
	sampleMinAmount      = 15.0
	sampleMaxAmount      = 150.0
)

// GenerateSampleSales gera registros brutos sintéticos de vendas para o
// período, usados quando a API está indisponível ou sem credenciais. Os
// registros saem no formato bruto para passar pelo mesmo caminho de
// normalização dos dados reais
func GenerateSampleSales(dateRange domain.DateRange) []fudodomain.Sale {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var sales []fudodomain.Sale
	for day := dateRange.Start; !day.After(dateRange.End); day = day.AddDate(0, 0, 1) {
		count := sampleMinSalesPerDay + rng.Intn(sampleMaxSalesPerDay-sampleMinSalesPerDay+1)

		for i := 0; i < count; i++ {
			hour := sampleOpeningHour + rng.Intn(sampleClosingHour-sampleOpeningHour+1)
			minute := rng.Intn(60)
			saleTime := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())

			amount := sampleMinAmount + rng.Float64()*(sampleMaxAmount-sampleMinAmount)

			sales = append(sales, fudodomain.Sale{
				ID:   sampleSaleID(len(sales) + 1),
				Type: "sales",
				Attributes: map[string]any{
					"createdAt": saleTime.Format(time.RFC3339),
					"total":     utils.RoundWithTwoDecimalPlace(amount),
					"status":    "CLOSED",
				},
			})
		}
	}

	return sales
}

func sampleSaleID(sequence int) string {
	id, err := utils.GenerateID()
	if err != nil {
		return strconv.Itoa(sequence)
	}
	return id
}
