package domain

// SalesPreview é o resultado da leitura do CSV antes de qualquer escrita
type SalesPreview struct {
	Columns   []string   `json:"columns"`
	TotalRows int        `json:"total_rows"`
	Rows      []*RawSale `json:"rows"`
	Truncated bool       `json:"truncated"`
	Encoding  string     `json:"encoding"`
}

type IngestionResult struct {
	UploadID     string   `json:"upload_id"`
	SourceID     string   `json:"source_id,omitempty"`
	SourceMode   string   `json:"source_mode"`
	RowsReceived int      `json:"rows_received"`
	RowsInserted int64    `json:"rows_inserted"`
	RowsDropped  int64    `json:"rows_dropped"`
	Message      string   `json:"message"`
	Warnings     []string `json:"warnings,omitempty"`
}
