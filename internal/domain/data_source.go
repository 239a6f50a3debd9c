package domain

type DataSource struct {
	ID string `json:"source_id"`
}
