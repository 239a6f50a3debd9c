package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/vfg2006/sales-reporting-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/sales-reporting-api/pkg/log"
)

const (
	uploadField   = "file"
	sourceIDField = "source_id"

	// Acima disso o multipart vai para arquivos temporários
	multipartMemory = 8 << 20
)

// uploadError carrega o código da API para falhas na leitura do formulário
type uploadError struct {
	code    string
	message string
	err     error
}

func (e *uploadError) Error() string {
	return e.message + ": " + e.err.Error()
}

func (e *uploadError) Unwrap() error {
	return e.err
}

// readUpload extrai o arquivo e o source_id do formulário multipart
func readUpload(r *http.Request) (multipart.File, string, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, "", &uploadError{apiErrors.ErrUploadTooLarge, "Arquivo acima do limite permitido", err}
		}
		return nil, "", &uploadError{apiErrors.ErrInvalidRequest, "Formulário multipart inválido", err}
	}

	file, _, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", &uploadError{apiErrors.ErrMissingUploadField, `Campo "file" é obrigatório`, err}
		}
		return nil, "", &uploadError{apiErrors.ErrInvalidRequest, "Erro ao ler o arquivo enviado", err}
	}

	return file, r.FormValue(sourceIDField), nil
}

// writeServiceError traduz erros dos casos de uso para o formato da API
func writeServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	var uploadErr *uploadError
	if errors.As(err, &uploadErr) {
		apiErrors.WriteError(w, uploadErr.code, uploadErr.message, uploadErr.err.Error())
		return
	}

	var ingestionErr *ingesting.IngestionError
	if errors.As(err, &ingestionErr) {
		var details any
		if ingestionErr.Row > 0 {
			details = map[string]any{"row": ingestionErr.Row, "error": ingestionErr.Details}
		} else if ingestionErr.Details != "" {
			details = ingestionErr.Details
		}
		apiErrors.WriteError(w, ingestionErr.Code, ingestionErr.Err.Error(), details)
		return
	}

	apiErr := apiErrors.FromError(err, apiErrors.ErrInternalServer)
	apiErrors.WriteError(w, apiErr.Code, fallbackMessage, apiErr.Message)
}

func statusFor(err error) int {
	var uploadErr *uploadError
	if errors.As(err, &uploadErr) {
		return apiErrors.Status(uploadErr.code)
	}

	var ingestionErr *ingesting.IngestionError
	if errors.As(err, &ingestionErr) {
		return apiErrors.Status(ingestionErr.Code)
	}

	return http.StatusInternalServerError
}

func PreviewSales(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, _, err := readUpload(r)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("sales-preview: upload inválido")
			writeServiceError(w, err, "Erro ao ler o arquivo")
			return
		}
		defer file.Close()

		preview, err := service.Preview(r.Context(), file)
		if err != nil {
			writeServiceError(w, err, "Erro ao ler o arquivo")
			return
		}

		writeJSON(w, r, http.StatusOK, preview)
	})
}

func UploadSales(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, sourceID, err := readUpload(r)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("sales-upload: upload inválido")
			writeServiceError(w, err, "Erro ao ler o arquivo")
			return
		}
		defer file.Close()

		result, err := service.Ingest(r.Context(), sourceID, file)
		if err != nil {
			writeServiceError(w, err, "Erro ao gravar vendas")
			return
		}

		writeJSON(w, r, http.StatusCreated, result)
	})
}

func ListDataSources(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sources, err := service.ListDataSources(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar data sources")
			writeServiceError(w, err, "Erro ao listar data sources")
			return
		}

		writeJSON(w, r, http.StatusOK, sources)
	})
}
