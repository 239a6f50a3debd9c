package reporting

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-reporting-api/infrastructure/repository"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
	"github.com/vfg2006/sales-reporting-api/pkg/log"
	"github.com/vfg2006/sales-reporting-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/reporter.go -package=mocks

const NoSummaryMessage = "Nenhum relatório de vendas disponível ainda."

var (
	ErrFetchSummary        = errors.New("error fetching summary report")
	ErrFetchAutomationLogs = errors.New("error fetching automation logs")
)

type Reporter interface {
	GetLatestSummary(ctx context.Context) (*domain.SummaryView, error)
	ListRecentAutomationLogs(ctx context.Context) (*domain.AutomationLogView, error)
}

type Service struct {
	summaryRepository       repository.SummaryReportRepository
	automationLogRepository repository.AutomationLogRepository
}

func NewService(
	summaryRepository repository.SummaryReportRepository,
	automationLogRepository repository.AutomationLogRepository,
) Reporter {
	return &Service{
		summaryRepository:       summaryRepository,
		automationLogRepository: automationLogRepository,
	}
}

// GetLatestSummary formata o relatório mais recente. A ausência de relatório não é erro.
func (s *Service) GetLatestSummary(ctx context.Context) (*domain.SummaryView, error) {
	report, err := s.summaryRepository.GetLatest(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("summary: erro ao buscar relatório")
		return nil, errors.Wrap(ErrFetchSummary, err.Error())
	}

	if report == nil {
		log.ForContext(ctx).Debug("summary: nenhum relatório gerado")
		return &domain.SummaryView{
			Available: false,
			Message:   NoSummaryMessage,
		}, nil
	}

	return &domain.SummaryView{
		Available: true,
		Metrics:   renderSummary(report),
	}, nil
}

func (s *Service) ListRecentAutomationLogs(ctx context.Context) (*domain.AutomationLogView, error) {
	entries, err := s.automationLogRepository.ListRecent(ctx, domain.AutomationLogLimit)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("automation-log: erro ao buscar eventos")
		return nil, errors.Wrap(ErrFetchAutomationLogs, err.Error())
	}

	items := make([]*domain.AutomationLogItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, &domain.AutomationLogItem{
			EventType: utils.FormatText(entry.EventType),
			Message:   utils.FormatText(entry.Message),
			CreatedAt: utils.FormatTimestamp(entry.CreatedAt),
		})
	}

	return &domain.AutomationLogView{
		Entries: items,
		Count:   len(items),
	}, nil
}

// Cada campo é formatado isoladamente: um valor nulo nunca esconde os demais
func renderSummary(report *domain.SummaryReport) *domain.SummaryMetrics {
	metrics := &domain.SummaryMetrics{
		TotalSales:      utils.FormatNullMoney(report.TotalSales),
		Transactions:    utils.FormatNullCount(report.TotalTransactions),
		AvgSale:         utils.FormatNullMoney(report.AvgSale),
		TopProduct:      utils.FormatNullText(report.TopProduct),
		TopCategory:     utils.FormatNullText(report.TopCategory),
		TopRegion:       utils.FormatNullText(report.TopRegion),
		WeakestCategory: utils.FormatNullText(report.WorstCategory),
		HighestSale:     utils.FormatNullMoney(report.MaxSale),
		SalesTrend:      utils.FormatNullText(report.SalesTrend),
		PeriodStart:     utils.FormatNullDate(report.StartDate),
		PeriodEnd:       utils.FormatNullDate(report.EndDate),
		GeneratedAt:     utils.FormatNullTimestamp(report.GeneratedAt),
	}

	if report.GeneratedAt.Valid {
		generatedAt := report.GeneratedAt.Time
		metrics.GeneratedAtRaw = &generatedAt
	}

	metrics.Caption = fmt.Sprintf("Período: %s → %s | Gerado em: %s",
		metrics.PeriodStart, metrics.PeriodEnd, metrics.GeneratedAt)

	return metrics
}
