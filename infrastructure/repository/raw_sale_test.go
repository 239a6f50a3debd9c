package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-reporting-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

const (
	explicitInsertPattern = `INSERT INTO raw_sale .*VALUES \(\$1,\s?\$2,\s?\$3,\s?\$4,\s?\$5,\s?\$6\)`
	legacyInsertPattern   = `INSERT INTO raw_sale .*SELECT ds\.source_id, CAST\(\$1 AS date\).*FROM data_source ds LIMIT 1`
)

func newMockConn(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &postgres.Connection{DB: db}, mock
}

func strPtr(s string) *string { return &s }

func sampleRows() []*domain.RawSale {
	return []*domain.RawSale{
		{Row: 1, SaleDate: strPtr("2025-01-02"), Amount: strPtr("1234.5"), Product: strPtr("Laptop"), Category: strPtr("Electronics"), Region: strPtr("North")},
		{Row: 2, SaleDate: strPtr("2025-01-03"), Amount: strPtr("20"), Product: strPtr("Pen"), Category: nil, Region: strPtr("South")},
	}
}

func TestRawSaleRepository_InsertBatch_ExplicitSource(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewRawSaleRepository(conn)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(explicitInsertPattern)
	prep.ExpectExec().
		WithArgs("7", "2025-01-02", "1234.5", "Laptop", "Electronics", "North").
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().
		WithArgs("7", "2025-01-03", "20", "Pen", nil, "South").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.InsertBatch(context.Background(), &domain.SalesBatch{
		UploadID: "up1",
		SourceID: "7",
		Rows:     sampleRows(),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.RowsInserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRawSaleRepository_InsertBatch_LegacyWithoutDataSources(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewRawSaleRepository(conn)

	// Sem data_source cadastrada o INSERT ... SELECT não produz linhas
	mock.ExpectBegin()
	prep := mock.ExpectPrepare(legacyInsertPattern)
	prep.ExpectExec().
		WithArgs("2025-01-02", "1234.5", "Laptop", "Electronics", "North").
		WillReturnResult(sqlmock.NewResult(0, 0))
	prep.ExpectExec().
		WithArgs("2025-01-03", "20", "Pen", nil, "South").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	result, err := repo.InsertBatch(context.Background(), &domain.SalesBatch{Rows: sampleRows()})

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.RowsInserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRawSaleRepository_InsertBatch_LegacyWithDataSource(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewRawSaleRepository(conn)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(legacyInsertPattern)
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.InsertBatch(context.Background(), &domain.SalesBatch{Rows: sampleRows()})

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.RowsInserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRawSaleRepository_InsertBatch_RowFailureRollsBack(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewRawSaleRepository(conn)

	pqErr := &pq.Error{Code: "22P02", Message: `invalid input syntax for type numeric: "abc"`}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(explicitInsertPattern)
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnError(pqErr)
	mock.ExpectRollback()

	result, err := repo.InsertBatch(context.Background(), &domain.SalesBatch{SourceID: "7", Rows: sampleRows()})

	assert.Nil(t, result)
	require.Error(t, err)

	var rowErr *RowInsertError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 2, rowErr.Row)

	var gotPQ *pq.Error
	require.True(t, errors.As(err, &gotPQ))
	assert.Equal(t, pq.ErrorCode("22P02"), gotPQ.Code)
	assert.Contains(t, err.Error(), `invalid input syntax for type numeric: "abc"`)
	assert.Contains(t, err.Error(), "22P02")
	assert.NotErrorIs(t, err, postgres.ErrCommitFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRawSaleRepository_InsertBatch_CommitFailure(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewRawSaleRepository(conn)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(explicitInsertPattern)
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("server closed the connection unexpectedly"))

	result, err := repo.InsertBatch(context.Background(), &domain.SalesBatch{SourceID: "7", Rows: sampleRows()})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, postgres.ErrCommitFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRawSaleRepository_InsertBatch_EmptyBatch(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewRawSaleRepository(conn)

	result, err := repo.InsertBatch(context.Background(), &domain.SalesBatch{SourceID: "7"})

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.RowsInserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
