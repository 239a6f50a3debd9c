package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-reporting-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

//go:generate mockgen -source=data_source.go -destination=mocks/data_source.go -package=mocks

const (
	dataSourceTable = "data_source ds"
)

type DataSourceRepository interface {
	Exists(ctx context.Context, sourceID string) (bool, error)
	List(ctx context.Context) ([]*domain.DataSource, error)
}

type dataSourceRepository struct {
	conn postgres.Conn
}

func NewDataSourceRepository(conn postgres.Conn) DataSourceRepository {
	return &dataSourceRepository{
		conn: conn,
	}
}

func (r *dataSourceRepository) Exists(ctx context.Context, sourceID string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(dataSourceTable).
		Where(squirrel.Eq{"ds.source_id": sourceID}).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var exists bool
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("erro ao verificar data_source: %w", describePQError(err))
	}

	return exists, nil
}

func (r *dataSourceRepository) List(ctx context.Context) ([]*domain.DataSource, error) {
	query, args, err := squirrel.
		Select("ds.source_id").
		From(dataSourceTable).
		OrderBy("ds.source_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sources := make([]*domain.DataSource, 0)
	for rows.Next() {
		source := &domain.DataSource{}
		if err := rows.Scan(&source.ID); err != nil {
			return nil, fmt.Errorf("erro ao escanear data_source: %w", err)
		}
		sources = append(sources, source)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sources, nil
}
