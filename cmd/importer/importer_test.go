package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

func TestParseRegistrations(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    *registrationSheet
		expectError string
	}{
		{
			name:  "regions and total",
			input: "Year,서울,부산,total\n2011,\"1,200\",300,1500\n2012,,40,\n",
			expected: &registrationSheet{
				Columns: []string{"year", "서울", "부산", "total"},
				Rows: [][]any{
					{int32(2011), int64(1200), int64(300), int64(1500)},
					{int32(2012), nil, int64(40), nil},
				},
			},
		},
		{
			name:        "no year column",
			input:       "서울,부산\n1,2\n",
			expectError: "no year column",
		},
		{
			name:        "duplicate column",
			input:       "year,서울,서울\n2011,1,2\n",
			expectError: "duplicate header column",
		},
		{
			name:        "missing year",
			input:       "year,서울\n,5\n",
			expectError: "line 2: missing year",
		},
		{
			name:        "not a number",
			input:       "year,서울\n2011,n/a\n",
			expectError: `column "서울": invalid count "n/a"`,
		},
		{
			name:        "ragged row",
			input:       "year,서울,부산\n2011,1\n",
			expectError: "expected 3 columns, got 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := parseRegistrations(strings.NewReader(tt.input))

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sheet)
		})
	}
}

func TestRegistrationSheet_CreateTableSQL(t *testing.T) {
	sheet := &registrationSheet{Columns: []string{"year", "서울", "total"}}

	ddl := sheet.createTableSQL()

	assert.Contains(t, ddl, `CREATE TABLE "tbl_register"`)
	assert.Contains(t, ddl, `"year" INTEGER NOT NULL`)
	assert.Contains(t, ddl, `"서울" BIGINT`)
	assert.Contains(t, ddl, `"total" BIGINT`)
}

func TestDecodeRowsAndUniqueRows(t *testing.T) {
	input := "statId,statNm,addr,lat,lng,parkingFree,zscode,chgerId\n" +
		"ME1,종로구청,서울 종로구,37.57,126.97,y,11110,01\n" +
		"ME1,종로구청,서울 종로구,37.57,126.97,y,11110,02\n" +
		",이름없음,,,,,11110,01\n" +
		"ME2,광화문,서울 종로구,37.58,126.98,N,11110,01\n"

	parsed, err := decodeRows[stationRow](strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, parsed, 4)

	rows, dropped := uniqueRows(parsed)
	assert.Equal(t, 2, dropped)
	require.Len(t, rows, 2)
	assert.Equal(t, []any{"ME1", "종로구청", "서울 종로구", "37.57", "126.97", "Y", "11110"}, rows[0].values())
	assert.Equal(t, "ME2", rows[1].key())
}

func TestUniqueRows_RegionsRequireNames(t *testing.T) {
	rows, dropped := uniqueRows([]regionRow{
		{Code: "11", Name: "서울특별시"},
		{Code: "26", Name: ""},
		{Code: "11", Name: "서울"},
	})

	assert.Equal(t, []regionRow{{Code: "11", Name: "서울특별시"}}, rows)
	assert.Equal(t, 2, dropped)
}

func TestOpenSource(t *testing.T) {
	dir := t.TempDir()
	const text = "zcode,regionNm\n11,서울특별시\n"

	eucKR, err := korean.EUCKR.NewEncoder().String(text)
	require.NoError(t, err)

	files := map[string]string{
		"bom.csv":   "\uFEFF" + text,
		"euckr.csv": eucKR,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}

	tests := []struct {
		name        string
		file        string
		encoding    string
		expectError bool
	}{
		{name: "utf-8 with bom", file: "bom.csv", encoding: encodingUTF8},
		{name: "euc-kr", file: "euckr.csv", encoding: encodingEUCKR},
		{name: "unknown encoding", file: "bom.csv", encoding: "latin1", expectError: true},
		{name: "missing file", file: "absent.csv", encoding: encodingUTF8, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := openSource(filepath.Join(dir, tt.file), tt.encoding)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer src.Close()

			body, err := io.ReadAll(src)
			require.NoError(t, err)
			assert.Equal(t, text, string(body))

			rows, err := decodeRows[regionRow](strings.NewReader(string(body)))
			require.NoError(t, err)
			assert.Equal(t, []regionRow{{Code: "11", Name: "서울특별시"}}, rows)
		})
	}
}

func TestParseCount(t *testing.T) {
	n, ok, err := parseCount(" 12,345 ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(12345), n)

	_, ok, err = parseCount("  ")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = parseCount("1.5")
	assert.Error(t, err)
}
