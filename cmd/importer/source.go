package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported values of the --encoding flag.
const (
	encodingUTF8  = "utf-8"
	encodingEUCKR = "euc-kr"
)

// openSource opens a CSV export and decodes it to UTF-8. A leading BOM is dropped.
func openSource(path, encoding string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	var t transform.Transformer
	switch strings.ToLower(encoding) {
	case encodingUTF8, "utf8", "":
		t = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	case encodingEUCKR, "cp949":
		t = korean.EUCKR.NewDecoder()
	default:
		file.Close()
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}

	return struct {
		io.Reader
		io.Closer
	}{transform.NewReader(file, t), file}, nil
}

func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

// decodeRows reads every record of a headed CSV into T using its csv struct tags.
func decodeRows[T any](r io.Reader) ([]T, error) {
	dec, err := csvutil.NewDecoder(newCSVReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows []T
	for {
		var row T
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read record %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
