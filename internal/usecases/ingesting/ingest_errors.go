package ingesting

import (
	"errors"
	"fmt"
)

// Erros específicos da carga de vendas
var (
	// Erros de validação
	ErrInvalidFile        = errors.New("invalid sales file")
	ErrMissingColumns     = errors.New("missing required columns")
	ErrDataSourceRequired = errors.New("data source is required")
	ErrDataSourceNotFound = errors.New("data source not found")

	// Erros de banco de dados
	ErrInsertFailed      = errors.New("error inserting sales data")
	ErrCommitFailed      = errors.New("error committing sales data")
	ErrFetchDataSources  = errors.New("error fetching data sources")
	ErrDatabaseOperation = errors.New("database operation error")

	ErrGenerateID = errors.New("error generating upload id")
)

// IngestionError é um erro com contexto adicional para a carga de vendas
type IngestionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Row     int    // Linha do upload (quando aplicável)
	Details string // Detalhes adicionais, normalmente a mensagem do banco
	Cause   error  // Erro original
}

// Error implementa a interface error
func (e *IngestionError) Error() string {
	msg := e.Err.Error()
	if e.Row > 0 {
		msg = fmt.Sprintf("%s (linha %d)", msg, e.Row)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap expõe tanto o erro base quanto a causa
func (e *IngestionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewIngestionError(err error, code string, details string) *IngestionError {
	return &IngestionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func newIngestionErrorWithCause(err error, code string, cause error) *IngestionError {
	return &IngestionError{
		Err:     err,
		Code:    code,
		Details: cause.Error(),
		Cause:   cause,
	}
}
