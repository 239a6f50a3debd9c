package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/vfg2006/sales-reporting-api/internal/domain"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-reporting-api/pkg/log"
	"github.com/vfg2006/sales-reporting-api/pkg/utils"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{"text": utils.FormatText}).
		ParseFS(templatesFS, "templates/dashboard.html"),
)

const (
	actionPreview = "preview"
	actionUpload  = "upload"
)

type dashboardPage struct {
	SourceMode     string
	Sources        []*domain.DataSource
	SourcesError   string
	SelectedSource string

	Preview     *domain.SalesPreview
	Result      *domain.IngestionResult
	UploadError string

	Summary      *domain.SummaryView
	SummaryError string

	Logs      *domain.AutomationLogView
	LogsError string
}

// Dashboard atende GET /. Cada visão só é carregada quando pedida na query,
// como os botões da página.
func Dashboard(ingester ingesting.Ingester, reporter reporting.Reporter, sourceMode string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := newDashboardPage(r, ingester, sourceMode)

		query := r.URL.Query()
		if query.Get("summary") != "" {
			summary, err := reporter.GetLatestSummary(r.Context())
			if err != nil {
				page.SummaryError = "Erro ao consultar o relatório: " + err.Error()
			}
			page.Summary = summary
		}

		if query.Get("logs") != "" {
			logs, err := reporter.ListRecentAutomationLogs(r.Context())
			if err != nil {
				page.LogsError = "Erro ao consultar os logs: " + err.Error()
			}
			page.Logs = logs
		}

		renderDashboard(w, r, http.StatusOK, page)
	})
}

// DashboardUpload atende POST / com action=preview ou action=upload
func DashboardUpload(ingester ingesting.Ingester, sourceMode string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := newDashboardPage(r, ingester, sourceMode)

		file, sourceID, err := readUpload(r)
		if err != nil {
			page.UploadError = err.Error()
			renderDashboard(w, r, statusFor(err), page)
			return
		}
		defer file.Close()

		page.SelectedSource = sourceID

		if r.FormValue("action") == actionPreview {
			preview, err := ingester.Preview(r.Context(), file)
			if err != nil {
				page.UploadError = err.Error()
				renderDashboard(w, r, statusFor(err), page)
				return
			}
			page.Preview = preview
			renderDashboard(w, r, http.StatusOK, page)
			return
		}

		result, err := ingester.Ingest(r.Context(), sourceID, file)
		if err != nil {
			page.UploadError = "Erro ao gravar vendas: " + err.Error()
			renderDashboard(w, r, statusFor(err), page)
			return
		}

		page.Result = result
		renderDashboard(w, r, http.StatusOK, page)
	})
}

func newDashboardPage(r *http.Request, ingester ingesting.Ingester, sourceMode string) *dashboardPage {
	page := &dashboardPage{SourceMode: sourceMode}

	sources, err := ingester.ListDataSources(r.Context())
	if err != nil {
		page.SourcesError = "Não foi possível carregar as data sources"
		log.ForContext(r.Context()).WithError(err).Warn("dashboard: erro ao listar data sources")
	}
	page.Sources = sources

	return page
}

// renderDashboard executa o template em um buffer para não enviar uma página pela metade
func renderDashboard(w http.ResponseWriter, r *http.Request, status int, page *dashboardPage) {
	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao renderizar template")
		http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("dashboard: erro ao escrever resposta")
	}
}
