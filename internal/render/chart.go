package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"evstat-api/internal/models"

	humanize "github.com/dustin/go-humanize"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoBars is returned when asked to draw a chart without data.
var ErrNoBars = errors.New("render: chart has no bars")

const (
	barWidth   = 40
	barSpacing = 20
	minWidth   = 1024
)

// LoadFont reads a TrueType font. The built-in chart font has no Hangul glyphs,
// so Korean titles are only drawn when a font is configured.
func LoadFont(path string) (*truetype.Font, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read font: %w", err)
	}
	font, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	return font, nil
}

// TrendPNG draws the national registration trend as a bar chart PNG.
func TrendPNG(w io.Writer, tc models.TrendChart, font *truetype.Font) error {
	if len(tc.Bars) == 0 {
		return ErrNoBars
	}

	lo, hi := tc.Bars[0].Value, tc.Bars[0].Value
	for _, b := range tc.Bars {
		lo, hi = min(lo, b.Value), max(hi, b.Value)
	}

	bars := make([]chart.Value, 0, len(tc.Bars))
	for _, b := range tc.Bars {
		fill := ScaleColor(b.Value, lo, hi)
		if b.Color != "" {
			fill = drawing.ColorFromHex(strings.TrimPrefix(b.Color, "#"))
		}
		bars = append(bars, chart.Value{
			Label: strconv.Itoa(b.Year),
			Value: float64(b.Value),
			Style: chart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1},
		})
	}
	top := hi
	if top <= 0 {
		top = 1
	}

	width := len(bars)*(barWidth+barSpacing) + 200
	if width < minWidth {
		width = minWidth
	}

	graph := chart.BarChart{
		Width:      width,
		Height:     tc.Height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top) * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return humanize.Comma(int64(f))
				}
				return fmt.Sprint(v)
			},
		},
		Bars: bars,
	}
	if font != nil {
		graph.Font = font
		graph.Title = tc.Title
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render: bar chart: %w", err)
	}
	return nil
}
