// Package parser lê o CSV de vendas enviado pelo usuário
package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

var (
	ErrEmptyFile      = errors.New("empty file: no header row found")
	ErrMissingColumns = errors.New("missing required columns")
	ErrMalformedRow   = errors.New("malformed row")
)

// MissingColumnsError lista as colunas obrigatórias que não estão no cabeçalho
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumns.Error(), strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}

// RowError indica a linha do arquivo (cabeçalho = 1) onde a leitura falhou
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s at line %d: %v", ErrMalformedRow.Error(), e.Line, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{ErrMalformedRow, e.Err}
}

type Result struct {
	Columns  []string
	Rows     []*domain.RawSale
	Encoding string
}

// ParseSales lê todo o CSV e devolve uma RawSale por linha de dados. Colunas extras
// são ignoradas; linhas curtas recebem NULL nas colunas faltantes; linhas com mais
// campos que o cabeçalho são rejeitadas. Nenhuma validação de tipo é feita aqui.
func ParseSales(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler arquivo: %w", err)
	}

	decoded, encodingName, err := DetectAndDecode(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, &RowError{Line: 1, Err: err}
	}

	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	missing := make([]string, 0)
	for _, column := range domain.RequiredSalesColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	rows := make([]*domain.RawSale, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.StartLine
			}
			return nil, &RowError{Line: line, Err: err}
		}

		line, _ := reader.FieldPos(0)

		if len(record) > len(headers) {
			return nil, &RowError{
				Line: line,
				Err:  fmt.Errorf("expected %d fields, saw %d", len(headers), len(record)),
			}
		}

		value := func(column string) *string {
			i := index[column]
			if i >= len(record) || record[i] == "" {
				return nil
			}
			v := record[i]
			return &v
		}

		rows = append(rows, &domain.RawSale{
			Row:      len(rows) + 1,
			SaleDate: value(domain.ColumnSaleDate),
			Amount:   value(domain.ColumnAmount),
			Product:  value(domain.ColumnProduct),
			Category: value(domain.ColumnCategory),
			Region:   value(domain.ColumnRegion),
		})
	}

	return &Result{
		Columns:  headers,
		Rows:     rows,
		Encoding: encodingName,
	}, nil
}
