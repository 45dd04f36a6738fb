package weather

import (
	"fmt"
	"strings"
)

// GenerateOverview builds the multi-day overview for ds:
//
//	2 Day Overview
//	  The lowest temperature will be 11.4°C, and will occur on Tuesday 06 July 2021.
//	  The highest temperature will be 26.1°C, and will occur on Monday 05 July 2021.
//	  The average low this week is 13.2°C.
//	  The average high this week is 25.9°C.
//
// ds must not be empty; an empty dataset returns ErrEmptyInput.
func GenerateOverview(ds Dataset) (string, error) {
	lows := ds.MinTemps()
	highs := ds.MaxTemps()

	lowest, ok := FindMin(lows)
	if !ok {
		return "", fmt.Errorf("%w: overview needs at least one record", ErrEmptyInput)
	}
	highest, ok := FindMax(highs)
	if !ok {
		return "", fmt.Errorf("%w: overview needs at least one record", ErrEmptyInput)
	}

	avgLow, err := Mean(lows)
	if err != nil {
		return "", err
	}
	avgHigh, err := Mean(highs)
	if err != nil {
		return "", err
	}

	dateLow, err := FormatDate(ds[lowest.Index].Date)
	if err != nil {
		return "", err
	}
	dateHigh, err := FormatDate(ds[highest.Index].Date)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d Day Overview\n", len(ds))
	fmt.Fprintf(&b, "  The lowest temperature will be %s, and will occur on %s.\n",
		FormatTemperature(FahrenheitToCelsius(lowest.Value)), dateLow)
	fmt.Fprintf(&b, "  The highest temperature will be %s, and will occur on %s.\n",
		FormatTemperature(FahrenheitToCelsius(highest.Value)), dateHigh)
	fmt.Fprintf(&b, "  The average low this week is %s.\n", FormatTemperature(FahrenheitToCelsius(avgLow)))
	fmt.Fprintf(&b, "  The average high this week is %s.\n", FormatTemperature(FahrenheitToCelsius(avgHigh)))
	return b.String(), nil
}

// GenerateDaily builds one block per record, in dataset order, each followed
// by a blank line. An empty dataset yields an empty string.
func GenerateDaily(ds Dataset) (string, error) {
	var b strings.Builder
	for _, r := range ds {
		date, err := FormatDate(r.Date)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "---- %s ----\n", date)
		fmt.Fprintf(&b, "  Minimum Temperature: %s\n", FormatTemperature(FahrenheitToCelsius(r.MinTempF)))
		fmt.Fprintf(&b, "  Maximum Temperature: %s\n\n", FormatTemperature(FahrenheitToCelsius(r.MaxTempF)))
	}
	return b.String(), nil
}
