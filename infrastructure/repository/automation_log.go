package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-reporting-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

//go:generate mockgen -source=automation_log.go -destination=mocks/automation_log.go -package=mocks

const (
	automationLogTable = "automation_log al"
)

type AutomationLogRepository interface {
	ListRecent(ctx context.Context, limit uint64) ([]*domain.AutomationLogEntry, error)
}

type automationLogRepository struct {
	conn postgres.Conn
}

func NewAutomationLogRepository(conn postgres.Conn) AutomationLogRepository {
	return &automationLogRepository{
		conn: conn,
	}
}

func (r *automationLogRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.AutomationLogEntry, error) {
	query, args, err := squirrel.
		Select("al.event_type", "al.message", "al.created_at").
		From(automationLogTable).
		OrderBy("al.created_at DESC NULLS LAST").
		Limit(limit).
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

	entries := make([]*domain.AutomationLogEntry, 0, limit)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear automation_log: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *automationLogRepository) scanEntry(rows *sql.Rows) (*domain.AutomationLogEntry, error) {
	var (
		eventType sql.NullString
		message   sql.NullString
		createdAt sql.NullTime
	)

	if err := rows.Scan(&eventType, &message, &createdAt); err != nil {
		return nil, err
	}

	entry := &domain.AutomationLogEntry{}
	if eventType.Valid {
		entry.EventType = &eventType.String
	}
	if message.Valid {
		entry.Message = &message.String
	}
	if createdAt.Valid {
		entry.CreatedAt = &createdAt.Time
	}

	return entry, nil
}
