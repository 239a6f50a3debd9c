package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-reporting-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

//go:generate mockgen -source=summary_report.go -destination=mocks/summary_report.go -package=mocks

const (
	summaryReportTable = "summary_report sr"
)

type SummaryReportRepository interface {
	// GetLatest devolve nil, nil quando ainda não existe relatório
	GetLatest(ctx context.Context) (*domain.SummaryReport, error)
}

type summaryReportRepository struct {
	conn postgres.Conn
}

func NewSummaryReportRepository(conn postgres.Conn) SummaryReportRepository {
	return &summaryReportRepository{
		conn: conn,
	}
}

func (r *summaryReportRepository) GetLatest(ctx context.Context) (*domain.SummaryReport, error) {
	query, args, err := squirrel.
		Select(
			"sr.start_date",
			"sr.end_date",
			"sr.total_sales",
			"sr.total_transactions",
			"sr.avg_sale",
			"sr.top_category",
			"sr.top_region",
			"sr.top_product",
			"sr.worst_category",
			"sr.max_sale",
			"sr.sales_trend",
			"sr.generated_at",
		).
		From(summaryReportTable).
		OrderBy("sr.generated_at DESC NULLS LAST").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report := &domain.SummaryReport{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&report.StartDate,
		&report.EndDate,
		&report.TotalSales,
		&report.TotalTransactions,
		&report.AvgSale,
		&report.TopCategory,
		&report.TopRegion,
		&report.TopProduct,
		&report.WorstCategory,
		&report.MaxSale,
		&report.SalesTrend,
		&report.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear summary_report: %w", err)
	}

	return report, nil
}
