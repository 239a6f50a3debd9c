package middleware

import (
	"net/http"

	"github.com/vfg2006/sales-reporting-api/pkg/log"
)

// LimitUploadSize limita o corpo da requisição a maxBytes. A leitura além do limite
// falha com *http.MaxBytesError, que o handler traduz para a resposta adequada.
func LimitUploadSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"content_length": r.ContentLength,
					"upload_limit":   maxBytes,
				}).Warn("Upload acima do limite")
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
