package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var korean = message.NewPrinter(language.Korean)

// CountLabel formats a vehicle count the way the trend chart prints it, e.g. "12,345대".
func CountLabel(n int64) string {
	return korean.Sprintf("%d대", n)
}

// StationCountLabel formats the number of stations shown on the map.
func StationCountLabel(n int) string {
	return korean.Sprintf("충전소 개수: %d개", n)
}
