package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var summaryColumns = []string{
	"start_date", "end_date", "total_sales", "total_transactions", "avg_sale",
	"top_category", "top_region", "top_product", "worst_category", "max_sale",
	"sales_trend", "generated_at",
}

const latestSummaryPattern = `SELECT .* FROM summary_report sr ORDER BY sr\.generated_at DESC NULLS LAST LIMIT 1`

func TestSummaryReportRepository_GetLatest(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSummaryReportRepository(conn)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)
	generated := time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC)

	mock.ExpectQuery(latestSummaryPattern).
		WillReturnRows(sqlmock.NewRows(summaryColumns).AddRow(
			start, end, "1234.50", "42", "29.39",
			"Electronics", nil, "Laptop", "Office", "999.99",
			"up", generated,
		))

	report, err := repo.GetLatest(context.Background())

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, sql.NullTime{Time: start, Valid: true}, report.StartDate)
	assert.True(t, report.TotalSales.Valid)
	assert.Equal(t, "1234.5", report.TotalSales.Decimal.String())
	assert.Equal(t, int64(42), report.TotalTransactions.Decimal.IntPart())
	assert.Equal(t, sql.NullString{String: "Electronics", Valid: true}, report.TopCategory)
	assert.False(t, report.TopRegion.Valid)
	assert.Equal(t, "up", report.SalesTrend.String)
	assert.Equal(t, generated, report.GeneratedAt.Time)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryReportRepository_GetLatestNullColumns(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSummaryReportRepository(conn)

	mock.ExpectQuery(latestSummaryPattern).
		WillReturnRows(sqlmock.NewRows(summaryColumns).AddRow(
			nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
		))

	report, err := repo.GetLatest(context.Background())

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.False(t, report.TotalSales.Valid)
	assert.False(t, report.TotalTransactions.Valid)
	assert.False(t, report.MaxSale.Valid)
	assert.False(t, report.GeneratedAt.Valid)
}

func TestSummaryReportRepository_GetLatestEmpty(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSummaryReportRepository(conn)

	mock.ExpectQuery(latestSummaryPattern).WillReturnRows(sqlmock.NewRows(summaryColumns))

	report, err := repo.GetLatest(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, report)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryReportRepository_GetLatestQueryError(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSummaryReportRepository(conn)

	mock.ExpectQuery(latestSummaryPattern).WillReturnError(errors.New(`relation "summary_report" does not exist`))

	report, err := repo.GetLatest(context.Background())

	assert.Nil(t, report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summary_report")
}
