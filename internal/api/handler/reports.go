package handler

import (
	"net/http"

	"github.com/vfg2006/sales-reporting-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-reporting-api/pkg/apiErrors"
)

// GetLatestSummary devolve 200 mesmo sem relatório; o corpo traz available=false
func GetLatestSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := service.GetLatestSummary(r.Context())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o relatório de vendas", err.Error())
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

func ListAutomationLogs(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := service.ListRecentAutomationLogs(r.Context())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar os logs de automação", err.Error())
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}
