package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-reporting-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestDashboard_Get(t *testing.T) {
	t.Run("sem ações carrega apenas as data sources", func(t *testing.T) {
		env := newTestEnv(t, 1<<20, fakePinger{})
		env.ingester.EXPECT().ListDataSources(gomock.Any()).Return([]*domain.DataSource{{ID: "7"}}, nil)

		rec := httptest.NewRecorder()
		env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), `<option value="7"`)
		assert.NotContains(t, rec.Body.String(), "Total Sales")
	})

	t.Run("relatório e logs", func(t *testing.T) {
		env := newTestEnv(t, 1<<20, fakePinger{})
		env.ingester.EXPECT().ListDataSources(gomock.Any()).Return(nil, nil)
		env.reporter.EXPECT().GetLatestSummary(gomock.Any()).Return(&domain.SummaryView{
			Available: true,
			Metrics: &domain.SummaryMetrics{
				TotalSales: "$1,234.50",
				TopProduct: "—",
				Caption:    "Período: 2025-01-01 → 2025-01-14 | Gerado em: 2025-01-15 06:30:00",
			},
		}, nil)
		env.reporter.EXPECT().ListRecentAutomationLogs(gomock.Any()).Return(&domain.AutomationLogView{
			Entries: []*domain.AutomationLogItem{{EventType: "SUMMARY_GENERATED", Message: "ok", CreatedAt: "2025-01-15 06:30:00"}},
			Count:   1,
		}, nil)

		rec := httptest.NewRecorder()
		env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?summary=1&logs=1", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "$1,234.50")
		assert.Contains(t, body, "Gerado em: 2025-01-15 06:30:00")
		assert.Contains(t, body, "SUMMARY_GENERATED")
	})

	t.Run("relatório ausente mostra aviso", func(t *testing.T) {
		env := newTestEnv(t, 1<<20, fakePinger{})
		env.ingester.EXPECT().ListDataSources(gomock.Any()).Return(nil, errors.New("timeout"))
		env.reporter.EXPECT().GetLatestSummary(gomock.Any()).Return(&domain.SummaryView{
			Available: false,
			Message:   "Nenhum relatório de vendas disponível ainda.",
		}, nil)

		rec := httptest.NewRecorder()
		env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?summary=1", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Nenhum relatório de vendas disponível ainda.")
		assert.Contains(t, rec.Body.String(), "Não foi possível carregar as data sources")
	})
}

func TestDashboard_Post(t *testing.T) {
	t.Run("pré-visualização", func(t *testing.T) {
		env := newTestEnv(t, 1<<20, fakePinger{})
		env.ingester.EXPECT().ListDataSources(gomock.Any()).Return([]*domain.DataSource{{ID: "7"}}, nil)
		env.ingester.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(&domain.SalesPreview{
			TotalRows: 1,
			Encoding:  "utf-8",
			Rows:      []*domain.RawSale{{Row: 1, SaleDate: strPtr("2025-01-02"), Amount: strPtr("10"), Product: strPtr("Laptop")}},
		}, nil)

		body, contentType := multipartBody(t, map[string]string{"action": "preview", "source_id": "7"}, salesCSV)
		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		env.handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<td>Laptop</td>")
		// Categoria nula aparece como placeholder
		assert.Contains(t, rec.Body.String(), "<td>—</td>")
		assert.Contains(t, rec.Body.String(), `<option value="7" selected>`)
	})

	t.Run("carga com linhas descartadas", func(t *testing.T) {
		env := newTestEnv(t, 1<<20, fakePinger{})
		env.ingester.EXPECT().ListDataSources(gomock.Any()).Return(nil, nil)
		env.ingester.EXPECT().Ingest(gomock.Any(), "", gomock.Any()).Return(&domain.IngestionResult{
			UploadID:     "UP1",
			RowsReceived: 2,
			RowsDropped:  2,
			Message:      "Carga concluída, mas linhas foram descartadas pelo banco.",
			Warnings:     []string{"2 de 2 linhas não foram gravadas"},
		}, nil)

		body, contentType := multipartBody(t, map[string]string{"action": "upload"}, salesCSV)
		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		env.handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "2 de 2 linhas não foram gravadas")
	})

	t.Run("erro de carga mantém a página", func(t *testing.T) {
		env := newTestEnv(t, 1<<20, fakePinger{})
		env.ingester.EXPECT().ListDataSources(gomock.Any()).Return(nil, nil)
		env.ingester.EXPECT().Ingest(gomock.Any(), "7", gomock.Any()).Return(nil,
			ingesting.NewIngestionError(ingesting.ErrDataSourceNotFound, apiErrors.ErrSourceNotFound, "7"))

		body, contentType := multipartBody(t, map[string]string{"action": "upload", "source_id": "7"}, salesCSV)
		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		env.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "data source not found")
	})
}
