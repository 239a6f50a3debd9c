package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-reporting-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

//go:generate mockgen -source=raw_sale.go -destination=mocks/raw_sale.go -package=mocks

const (
	rawSaleTable = "raw_sale"
)

var rawSaleColumns = []string{"source_id", "sale_date", "amount", "product", "category", "region"}

type RawSaleRepository interface {
	InsertBatch(ctx context.Context, batch *domain.SalesBatch) (*domain.InsertResult, error)
}

// RowInsertError identifica a linha do upload cuja instrução falhou
type RowInsertError struct {
	Row int
	Err error
}

func (e *RowInsertError) Error() string {
	return fmt.Sprintf("erro ao inserir linha %d: %v", e.Row, e.Err)
}

func (e *RowInsertError) Unwrap() error {
	return e.Err
}

type rawSaleRepository struct {
	conn postgres.Conn
}

func NewRawSaleRepository(conn postgres.Conn) RawSaleRepository {
	return &rawSaleRepository{
		conn: conn,
	}
}

// InsertBatch grava todas as linhas em uma única transação, uma instrução por linha.
// Com SourceID vazio cada linha recebe uma data_source qualquer (SELECT ... LIMIT 1);
// se a tabela estiver vazia as instruções afetam 0 linhas e nada é gravado.
func (r *rawSaleRepository) InsertBatch(ctx context.Context, batch *domain.SalesBatch) (*domain.InsertResult, error) {
	result := &domain.InsertResult{}
	if len(batch.Rows) == 0 {
		return result, nil
	}

	query, err := r.insertQuery(batch.SourceID)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("erro ao preparar insert de vendas: %w", err)
		}
		defer stmt.Close()

		for _, row := range batch.Rows {
			res, err := stmt.ExecContext(ctx, r.insertArgs(batch.SourceID, row)...)
			if err != nil {
				return &RowInsertError{Row: row.Row, Err: describePQError(err)}
			}

			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
			}
			result.RowsInserted += affected
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *rawSaleRepository) insertQuery(sourceID string) (string, error) {
	builder := squirrel.
		Insert(rawSaleTable).
		Columns(rawSaleColumns...).
		PlaceholderFormat(squirrel.Dollar)

	if sourceID != "" {
		builder = builder.Values(nil, nil, nil, nil, nil, nil)
	} else {
		// Os casts são necessários: no SELECT o Postgres não infere o tipo dos parâmetros
		builder = builder.Select(
			squirrel.
				Select("ds.source_id").
				Column("CAST(? AS date)", nil).
				Column("CAST(? AS numeric)", nil).
				Column("CAST(? AS text)", nil).
				Column("CAST(? AS text)", nil).
				Column("CAST(? AS text)", nil).
				From(dataSourceTable).
				Limit(1),
		)
	}

	query, _, err := builder.ToSql()
	return query, err
}

func (r *rawSaleRepository) insertArgs(sourceID string, row *domain.RawSale) []any {
	args := make([]any, 0, len(rawSaleColumns))
	if sourceID != "" {
		args = append(args, sourceID)
	}

	return append(args, row.SaleDate, row.Amount, row.Product, row.Category, row.Region)
}

// describePQError mantém a mensagem original do banco e acrescenta o SQLSTATE
func describePQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return err
}
