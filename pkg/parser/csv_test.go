package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

func ptr(s string) *string { return &s }

func TestParseSales(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRows []*domain.RawSale
		wantErr  error
	}{
		{
			name: "arquivo válido",
			input: "sale_date,amount,product,category,region\n" +
				"2025-01-02,1234.5,Laptop,Electronics,North\n" +
				"2025-01-03,20,Pen,Office,South\n",
			wantRows: []*domain.RawSale{
				{Row: 1, SaleDate: ptr("2025-01-02"), Amount: ptr("1234.5"), Product: ptr("Laptop"), Category: ptr("Electronics"), Region: ptr("North")},
				{Row: 2, SaleDate: ptr("2025-01-03"), Amount: ptr("20"), Product: ptr("Pen"), Category: ptr("Office"), Region: ptr("South")},
			},
		},
		{
			name: "colunas em outra ordem e colunas extras ignoradas",
			input: "region,notes,product, amount ,category,sale_date\n" +
				"West,promo,Chair,99.90,Furniture,2025-02-01\n",
			wantRows: []*domain.RawSale{
				{Row: 1, SaleDate: ptr("2025-02-01"), Amount: ptr("99.90"), Product: ptr("Chair"), Category: ptr("Furniture"), Region: ptr("West")},
			},
		},
		{
			name: "valores vazios e linha curta viram NULL",
			input: "sale_date,amount,product,category,region\n" +
				"2025-01-02,,Laptop,,North\n" +
				"2025-01-03,10\n",
			wantRows: []*domain.RawSale{
				{Row: 1, SaleDate: ptr("2025-01-02"), Product: ptr("Laptop"), Region: ptr("North")},
				{Row: 2, SaleDate: ptr("2025-01-03"), Amount: ptr("10")},
			},
		},
		{
			name:  "valor não numérico segue sem validação",
			input: "sale_date,amount,product,category,region\n2025-01-02,abc,Laptop,Electronics,North\n",
			wantRows: []*domain.RawSale{
				{Row: 1, SaleDate: ptr("2025-01-02"), Amount: ptr("abc"), Product: ptr("Laptop"), Category: ptr("Electronics"), Region: ptr("North")},
			},
		},
		{
			name:     "somente cabeçalho",
			input:    "sale_date,amount,product,category,region\n",
			wantRows: []*domain.RawSale{},
		},
		{
			name:     "linhas em branco são ignoradas",
			input:    "sale_date,amount,product,category,region\n\n2025-01-02,1,A,B,C\n\n",
			wantRows: []*domain.RawSale{{Row: 1, SaleDate: ptr("2025-01-02"), Amount: ptr("1"), Product: ptr("A"), Category: ptr("B"), Region: ptr("C")}},
		},
		{
			name:    "arquivo vazio",
			input:   "",
			wantErr: ErrEmptyFile,
		},
		{
			name:    "coluna obrigatória ausente",
			input:   "sale_date,amount,product,category\n2025-01-02,1,A,B\n",
			wantErr: ErrMissingColumns,
		},
		{
			name:    "linha com mais campos que o cabeçalho",
			input:   "sale_date,amount,product,category,region\n2025-01-02,1,A,B,C,D\n",
			wantErr: ErrMalformedRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSales(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "erro inesperado: %v", err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, result.Rows)
		})
	}
}

func TestParseSales_MissingColumnsListed(t *testing.T) {
	_, err := ParseSales(strings.NewReader("sale_date,product\n"))

	var missingErr *MissingColumnsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{"amount", "category", "region"}, missingErr.Columns)
}

func TestParseSales_MalformedRowLine(t *testing.T) {
	_, err := ParseSales(strings.NewReader("sale_date,amount,product,category,region\n2025-01-02,1,A,B,C\n2025-01-03,1,A,B,C,D\n"))

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Line)
}

func TestParseSales_Encodings(t *testing.T) {
	t.Run("utf-8 com BOM", func(t *testing.T) {
		input := "\xEF\xBB\xBFsale_date,amount,product,category,region\n2025-01-02,1,Café,B,C\n"
		result, err := ParseSales(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, EncodingUTF8BOM, result.Encoding)
		assert.Equal(t, "sale_date", result.Columns[0])
		assert.Equal(t, "Café", *result.Rows[0].Product)
	})

	t.Run("latin-1", func(t *testing.T) {
		input := "sale_date,amount,product,category,region\n2025-01-02,1,Caf\xE9,B,C\n"
		result, err := ParseSales(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, EncodingLatin1, result.Encoding)
		assert.Equal(t, "Café", *result.Rows[0].Product)
	})

	t.Run("utf-16le com BOM", func(t *testing.T) {
		text := "sale_date,amount,product,category,region\n2025-01-02,1,A,B,C\n"
		encoded := []byte{0xFF, 0xFE}
		for _, r := range text {
			encoded = append(encoded, byte(r), 0x00)
		}

		result, err := ParseSales(strings.NewReader(string(encoded)))
		require.NoError(t, err)
		assert.Equal(t, EncodingUTF16LE, result.Encoding)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "C", *result.Rows[0].Region)
	})
}
