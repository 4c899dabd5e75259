package models

// RegistrationRecord is one yearly snapshot of tbl_register. Counts holds every region column keyed by column name; a precomputed total column, when present, is kept apart in Total and is never aggregated.
type RegistrationRecord struct {
	Year   int              `json:"year"`
	Counts map[string]int64 `json:"counts"`
	Total  *int64           `json:"total,omitempty"`
}

// YearlyTotal is a single (year, national total) point of the trend series.
type YearlyTotal struct {
	Year          int   `json:"year"`
	NationalTotal int64 `json:"national_total"`
}

// TrendBar is one bar of the registration trend chart.
type TrendBar struct {
	Year  int    `json:"year"`
	Value int64  `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// TrendChart is the presentation document for the national registration trend page.
type TrendChart struct {
	Title      string        `json:"title"`
	XAxisTitle string        `json:"x_axis_title"`
	YAxisTitle string        `json:"y_axis_title"`
	XAxisType  string        `json:"x_axis_type"`
	ColorScale string        `json:"color_scale"`
	Height     int           `json:"height"`
	Series     []YearlyTotal `json:"series"`
	Bars       []TrendBar    `json:"bars"`
	Caption    string        `json:"caption"`
}
