package service

import (
	"testing"

	"evstat-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(n int64) *int64 { return &n }

func TestAggregateYearly(t *testing.T) {
	tests := []struct {
		name     string
		records  []models.RegistrationRecord
		expected []models.YearlyTotal
	}{
		{
			name:     "empty input",
			records:  nil,
			expected: []models.YearlyTotal{},
		},
		{
			name: "sums regions per year",
			records: []models.RegistrationRecord{
				{Year: 2010, Counts: map[string]int64{"seoul": 100, "busan": 50}},
				{Year: 2011, Counts: map[string]int64{"seoul": 150, "busan": 80}},
			},
			expected: []models.YearlyTotal{
				{Year: 2010, NationalTotal: 150},
				{Year: 2011, NationalTotal: 230},
			},
		},
		{
			name: "precomputed total is not double counted",
			records: []models.RegistrationRecord{
				{Year: 2020, Counts: map[string]int64{"seoul": 10, "busan": 5}, Total: ptr(15)},
			},
			expected: []models.YearlyTotal{{Year: 2020, NationalTotal: 15}},
		},
		{
			name: "unordered input is sorted ascending",
			records: []models.RegistrationRecord{
				{Year: 2025, Counts: map[string]int64{"seoul": 3}},
				{Year: 2010, Counts: map[string]int64{"seoul": 1}},
				{Year: 2017, Counts: map[string]int64{"seoul": 2}},
			},
			expected: []models.YearlyTotal{
				{Year: 2010, NationalTotal: 1},
				{Year: 2017, NationalTotal: 2},
				{Year: 2025, NationalTotal: 3},
			},
		},
		{
			name: "missing columns count as zero",
			records: []models.RegistrationRecord{
				{Year: 2010, Counts: map[string]int64{"seoul": 7}},
				{Year: 2011, Counts: map[string]int64{"jeju": 4}},
			},
			expected: []models.YearlyTotal{
				{Year: 2010, NationalTotal: 7},
				{Year: 2011, NationalTotal: 4},
			},
		},
		{
			name: "duplicate years are merged",
			records: []models.RegistrationRecord{
				{Year: 2012, Counts: map[string]int64{"seoul": 1}},
				{Year: 2012, Counts: map[string]int64{"seoul": 2}},
			},
			expected: []models.YearlyTotal{{Year: 2012, NationalTotal: 3}},
		},
		{
			name:     "record without region columns",
			records:  []models.RegistrationRecord{{Year: 2010, Counts: map[string]int64{}}},
			expected: []models.YearlyTotal{{Year: 2010, NationalTotal: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AggregateYearly(tt.records)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAggregateYearly_Idempotent(t *testing.T) {
	records := []models.RegistrationRecord{
		{Year: 2011, Counts: map[string]int64{"seoul": 150, "busan": 80}},
		{Year: 2010, Counts: map[string]int64{"seoul": 100, "busan": 50}},
	}

	first, err := AggregateYearly(records)
	require.NoError(t, err)
	second, err := AggregateYearly(records)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2011, records[0].Year, "input order is untouched")
}

func TestAggregateYearly_StrictlyAscending(t *testing.T) {
	records := []models.RegistrationRecord{}
	for year := 2025; year >= 2010; year-- {
		records = append(records, models.RegistrationRecord{Year: year, Counts: map[string]int64{"a": int64(year), "b": 1}})
	}

	got, err := AggregateYearly(records)
	require.NoError(t, err)
	require.Len(t, got, 16)
	for i := range got {
		assert.Equal(t, int64(got[i].Year)+1, got[i].NationalTotal)
		if i > 0 {
			assert.Greater(t, got[i].Year, got[i-1].Year)
		}
	}
}
