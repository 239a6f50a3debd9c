package ingesting

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-reporting-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reporting-api/infrastructure/repository"
	"github.com/vfg2006/sales-reporting-api/internal/config"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
	"github.com/vfg2006/sales-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/sales-reporting-api/pkg/log"
	"github.com/vfg2006/sales-reporting-api/pkg/parser"
	"github.com/vfg2006/sales-reporting-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/ingester.go -package=mocks

// Classe SQLSTATE 22: valor incompatível com o tipo da coluna
const pqDataExceptionClass = "22"

type Ingester interface {
	// Preview lê o arquivo sem gravar nada
	Preview(ctx context.Context, file io.Reader) (*domain.SalesPreview, error)
	// Ingest grava todas as linhas do arquivo em raw_sale associadas a sourceID
	Ingest(ctx context.Context, sourceID string, file io.Reader) (*domain.IngestionResult, error)
	ListDataSources(ctx context.Context) ([]*domain.DataSource, error)
}

type Service struct {
	rawSaleRepository    repository.RawSaleRepository
	dataSourceRepository repository.DataSourceRepository
	cfg                  config.Ingestion
	newID                func() (string, error)
}

func NewService(
	rawSaleRepository repository.RawSaleRepository,
	dataSourceRepository repository.DataSourceRepository,
	cfg *config.Config,
) Ingester {
	return &Service{
		rawSaleRepository:    rawSaleRepository,
		dataSourceRepository: dataSourceRepository,
		cfg:                  cfg.Ingestion,
		newID:                utils.GenerateID,
	}
}

func (s *Service) Preview(ctx context.Context, file io.Reader) (*domain.SalesPreview, error) {
	parsed, err := s.parse(file)
	if err != nil {
		return nil, err
	}

	rows := parsed.Rows
	truncated := false
	if s.cfg.PreviewRows > 0 && len(rows) > s.cfg.PreviewRows {
		rows = rows[:s.cfg.PreviewRows]
		truncated = true
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"rows_total": len(parsed.Rows),
		"encoding":   parsed.Encoding,
	}).Info("sales-preview: arquivo lido com sucesso")

	return &domain.SalesPreview{
		Columns:   parsed.Columns,
		TotalRows: len(parsed.Rows),
		Rows:      rows,
		Truncated: truncated,
		Encoding:  parsed.Encoding,
	}, nil
}

func (s *Service) Ingest(ctx context.Context, sourceID string, file io.Reader) (*domain.IngestionResult, error) {
	uploadID, err := s.newID()
	if err != nil {
		return nil, newIngestionErrorWithCause(ErrGenerateID, apiErrors.ErrInternalServer, err)
	}

	logger := log.ForContext(ctx).WithField("upload_id", uploadID)

	// Toda a validação do arquivo acontece antes de qualquer escrita
	parsed, err := s.parse(file)
	if err != nil {
		logger.WithError(err).Warn("sales-upload: arquivo rejeitado")
		return nil, err
	}

	sourceID = strings.TrimSpace(sourceID)
	result := &domain.IngestionResult{
		UploadID:     uploadID,
		SourceID:     sourceID,
		SourceMode:   s.cfg.SourceMode,
		RowsReceived: len(parsed.Rows),
	}

	if err := s.resolveSource(ctx, sourceID, result); err != nil {
		logger.WithError(err).Warn("sales-upload: data_source inválida")
		return nil, err
	}

	if len(parsed.Rows) == 0 {
		result.Message = "Nenhuma linha de venda no arquivo; nada foi inserido."
		logger.Info("sales-upload: arquivo sem linhas de dados")
		return result, nil
	}

	inserted, err := s.rawSaleRepository.InsertBatch(ctx, &domain.SalesBatch{
		UploadID: uploadID,
		SourceID: sourceID,
		Rows:     parsed.Rows,
	})
	if err != nil {
		ingestionErr := insertError(err)
		logger.WithError(err).WithFields(log.Fields{
			"rows_received": result.RowsReceived,
			"row":           ingestionErr.Row,
		}).Error("sales-upload: erro ao gravar vendas, lote desfeito")
		return nil, ingestionErr
	}

	result.RowsInserted = inserted.RowsInserted
	result.RowsDropped = int64(result.RowsReceived) - inserted.RowsInserted

	if result.RowsDropped > 0 {
		// Comportamento herdado do modo legado: sem data_source o INSERT ... SELECT
		// não produz linhas. Reportado, não corrigido.
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"%d de %d linhas não foram gravadas: nenhuma data_source disponível para associação",
			result.RowsDropped, result.RowsReceived,
		))
		result.Message = "Carga concluída, mas linhas foram descartadas pelo banco."
		logger.WithFields(log.Fields{
			"rows_received": result.RowsReceived,
			"rows_dropped":  result.RowsDropped,
		}).Warn("sales-upload: linhas descartadas sem data_source")
		return result, nil
	}

	result.Message = "Dados de vendas inseridos com sucesso."
	logger.WithFields(log.Fields{
		"source_id":     sourceID,
		"rows_inserted": result.RowsInserted,
	}).Info("sales-upload: carga concluída")

	return result, nil
}

func (s *Service) ListDataSources(ctx context.Context) ([]*domain.DataSource, error) {
	sources, err := s.dataSourceRepository.List(ctx)
	if err != nil {
		return nil, newIngestionErrorWithCause(
			ErrFetchDataSources,
			apiErrors.ErrDatabaseOperation,
			errors.Wrap(err, "falha ao listar data_source"),
		)
	}
	return sources, nil
}

func (s *Service) parse(file io.Reader) (*parser.Result, error) {
	parsed, err := parser.ParseSales(file)
	if err == nil {
		return parsed, nil
	}

	var missingErr *parser.MissingColumnsError
	if errors.As(err, &missingErr) {
		return nil, &IngestionError{
			Err:     ErrMissingColumns,
			Code:    apiErrors.ErrMissingColumns,
			Details: strings.Join(missingErr.Columns, ", "),
			Cause:   err,
		}
	}

	var rowErr *parser.RowError
	if errors.As(err, &rowErr) {
		return nil, &IngestionError{
			Err:     ErrInvalidFile,
			Code:    apiErrors.ErrInvalidFile,
			Row:     rowErr.Line,
			Details: rowErr.Err.Error(),
			Cause:   err,
		}
	}

	return nil, newIngestionErrorWithCause(ErrInvalidFile, apiErrors.ErrInvalidFile, err)
}

// resolveSource aplica a regra de associação da carga a uma data_source
func (s *Service) resolveSource(ctx context.Context, sourceID string, result *domain.IngestionResult) error {
	if sourceID == "" {
		if s.cfg.SourceMode != config.SourceModeLegacy {
			return NewIngestionError(ErrDataSourceRequired, apiErrors.ErrSourceRequired,
				"informe source_id (consulte /v1/data-sources)")
		}

		result.Warnings = append(result.Warnings,
			"source_id não informado: as linhas serão associadas a uma data_source arbitrária")
		return nil
	}

	exists, err := s.dataSourceRepository.Exists(ctx, sourceID)
	if err != nil {
		// Um id em formato inválido para a coluna não pode existir
		if hasPQClass(err, pqDataExceptionClass) {
			return NewIngestionError(ErrDataSourceNotFound, apiErrors.ErrSourceNotFound, sourceID)
		}
		return newIngestionErrorWithCause(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err)
	}

	if !exists {
		return NewIngestionError(ErrDataSourceNotFound, apiErrors.ErrSourceNotFound, sourceID)
	}

	return nil
}

func insertError(err error) *IngestionError {
	if errors.Is(err, postgres.ErrCommitFailed) {
		return newIngestionErrorWithCause(ErrCommitFailed, apiErrors.ErrCommitFailed, err)
	}

	code := apiErrors.ErrDatabaseOperation
	if hasPQClass(err, pqDataExceptionClass) {
		code = apiErrors.ErrInvalidFormat
	}

	ingestionErr := &IngestionError{
		Err:     ErrInsertFailed,
		Code:    code,
		Details: err.Error(),
		Cause:   err,
	}

	var rowErr *repository.RowInsertError
	if errors.As(err, &rowErr) {
		ingestionErr.Row = rowErr.Row
		ingestionErr.Details = rowErr.Err.Error()
	}

	return ingestionErr
}

func hasPQClass(err error, class string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code.Class()) == class
	}
	return false
}
