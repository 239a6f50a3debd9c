package domain

// Colunas obrigatórias do CSV de vendas, na ordem em que são gravadas
const (
	ColumnSaleDate = "sale_date"
	ColumnAmount   = "amount"
	ColumnProduct  = "product"
	ColumnCategory = "category"
	ColumnRegion   = "region"
)

var RequiredSalesColumns = []string{
	ColumnSaleDate,
	ColumnAmount,
	ColumnProduct,
	ColumnCategory,
	ColumnRegion,
}

// RawSale é uma linha do CSV enviada para raw_sale. Os valores seguem como texto e a
// conversão de tipos (data, numeric) fica a cargo do banco; nil vira NULL.
type RawSale struct {
	Row      int     `json:"row"`
	SaleDate *string `json:"sale_date"`
	Amount   *string `json:"amount"`
	Product  *string `json:"product"`
	Category *string `json:"category"`
	Region   *string `json:"region"`
}

// SalesBatch é o conjunto de linhas de um upload. SourceID vazio significa que a
// data_source será escolhida pelo próprio INSERT (modo legado).
type SalesBatch struct {
	UploadID string
	SourceID string
	Rows     []*RawSale
}

type InsertResult struct {
	RowsInserted int64
}
