package parser

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Nomes de codificação reportados no preview
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF8BOM = "utf-8-bom"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
	EncodingLatin1  = "latin-1"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectAndDecode converte o conteúdo para UTF-8 sem BOM. Sem BOM e com bytes
// inválidos em UTF-8, assume ISO-8859-1 (planilhas exportadas no Windows).
func DetectAndDecode(data []byte) ([]byte, string, error) {
	name := ""
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		name = EncodingUTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		name = EncodingUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		name = EncodingUTF16BE
	}

	if name != "" {
		decoded, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
		if err != nil {
			return nil, "", fmt.Errorf("falha ao decodificar %s: %w", name, err)
		}
		return decoded, name, nil
	}

	if utf8.Valid(data) {
		return data, EncodingUTF8, nil
	}

	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return nil, "", fmt.Errorf("falha ao decodificar %s: %w", EncodingLatin1, err)
	}
	return decoded, EncodingLatin1, nil
}
