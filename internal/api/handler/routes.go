package handler

import (
	"net/http"

	"github.com/vfg2006/fudo-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/fudo-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/fudo-analytics-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func SalesReports(service reporting.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/report",
			Method:  http.MethodGet,
			Handler: GetSalesReport(service),
		},
		{
			Path:    "/v1/sales/trends",
			Method:  http.MethodGet,
			Handler: GetSalesTrends(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
