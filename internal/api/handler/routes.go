package handler

import (
	"net/http"

	"github.com/vfg2006/sales-reporting-api/internal/api/handler/router"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-reporting-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func DataSources(service ingesting.Ingester) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/data-sources",
			Method:  http.MethodGet,
			Handler: ListDataSources(service),
		},
	}
}

func Sales(service ingesting.Ingester, maxUploadBytes int64) []router.Route {
	limit := []func(http.Handler) http.Handler{middleware.LimitUploadSize(maxUploadBytes)}

	return []router.Route{
		{
			Path:        "/v1/sales/preview",
			Method:      http.MethodPost,
			Handler:     PreviewSales(service),
			Middlewares: limit,
		},
		{
			Path:        "/v1/sales/upload",
			Method:      http.MethodPost,
			Handler:     UploadSales(service),
			Middlewares: limit,
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/summary/latest",
			Method:  http.MethodGet,
			Handler: GetLatestSummary(service),
		},
		{
			Path:    "/v1/automation-logs",
			Method:  http.MethodGet,
			Handler: ListAutomationLogs(service),
		},
	}
}

// DashboardPage agrupa as rotas da página HTML
func DashboardPage(ingester ingesting.Ingester, reporter reporting.Reporter, sourceMode string, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Dashboard(ingester, reporter, sourceMode),
		},
		{
			Path:        "/",
			Method:      http.MethodPost,
			Handler:     DashboardUpload(ingester, sourceMode),
			Middlewares: []func(http.Handler) http.Handler{middleware.LimitUploadSize(maxUploadBytes)},
		},
	}
}
