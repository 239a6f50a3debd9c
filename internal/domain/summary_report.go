package domain

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// SummaryReport é o agregado de 14 dias calculado fora desta aplicação.
// Qualquer coluna pode vir nula.
type SummaryReport struct {
	StartDate         sql.NullTime
	EndDate           sql.NullTime
	TotalSales        decimal.NullDecimal
	TotalTransactions decimal.NullDecimal
	AvgSale           decimal.NullDecimal
	TopCategory       sql.NullString
	TopRegion         sql.NullString
	TopProduct        sql.NullString
	WorstCategory     sql.NullString
	MaxSale           decimal.NullDecimal
	SalesTrend        sql.NullString
	GeneratedAt       sql.NullTime
}

// SummaryView é o relatório já formatado para exibição
type SummaryView struct {
	Available bool            `json:"available"`
	Message   string          `json:"message,omitempty"`
	Metrics   *SummaryMetrics `json:"metrics,omitempty"`
}

type SummaryMetrics struct {
	TotalSales      string     `json:"total_sales"`
	Transactions    string     `json:"transactions"`
	AvgSale         string     `json:"avg_sale"`
	TopProduct      string     `json:"top_product"`
	TopCategory     string     `json:"top_category"`
	TopRegion       string     `json:"top_region"`
	WeakestCategory string     `json:"weakest_category"`
	HighestSale     string     `json:"highest_sale"`
	SalesTrend      string     `json:"sales_trend"`
	PeriodStart     string     `json:"period_start"`
	PeriodEnd       string     `json:"period_end"`
	GeneratedAt     string     `json:"generated_at"`
	Caption         string     `json:"caption"`
	GeneratedAtRaw  *time.Time `json:"generated_at_raw,omitempty"`
}
