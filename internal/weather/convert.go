package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DegreeSuffix is appended to every rendered temperature.
const DegreeSuffix = "°C"

const displayDateLayout = "Monday 02 January 2006"

// Accepted input layouts. Both require seconds and an explicit UTC offset.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
}

// FahrenheitToCelsius converts f to Celsius rounded to one decimal place.
// Rounding goes through the decimal string so that displayed values match
// what a "%.1f" formatter would print.
func FahrenheitToCelsius(f float64) float64 {
	c := (f - 32) * 5 / 9
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(c, 'f', 1, 64), 64)
	if err != nil {
		return c
	}
	return rounded
}

// FormatTemperature renders v followed by DegreeSuffix, e.g. "11.4°C".
// Whole numbers keep one fractional digit ("0.0°C").
func FormatTemperature(v float64) string {
	return formatFloat(v) + DegreeSuffix
}

// formatFloat renders the shortest round-tripping form of v. Magnitudes outside
// [1e-4, 1e16) switch to exponent notation, e.g. "5.555555555555556e+19".
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if abs := math.Abs(v); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatDate turns an ISO-8601 timestamp such as "2021-07-06T07:00:00+00:00"
// into "Tuesday 06 July 2021". The date is rendered in its own offset.
func FormatDate(iso string) (string, error) {
	// time.Parse tolerates fractional seconds the layout does not mention.
	if strings.Contains(iso, ".") {
		return "", fmt.Errorf("%w: invalid date %q", ErrParse, iso)
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format(displayDateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: invalid date %q", ErrParse, iso)
}
