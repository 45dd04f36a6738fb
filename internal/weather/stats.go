package weather

// Extremum is a value together with its 0-based position in the input.
type Extremum struct {
	Value float64
	Index int
}

// Mean returns the arithmetic mean of values.
// It returns ErrEmptyInput when values is empty.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	var (
		total float64
		count int
	)
	for _, v := range values {
		total += v
		count++
	}
	return total / float64(count), nil
}

// FindMin returns the smallest value and its position. When the minimum occurs
// more than once, the last occurrence wins. ok is false for empty input.
func FindMin(values []float64) (lowest Extremum, ok bool) {
	if len(values) == 0 {
		return Extremum{}, false
	}

	lowest = Extremum{Value: values[0]}
	for i, v := range values {
		if v <= lowest.Value {
			lowest = Extremum{Value: v, Index: i}
		}
	}
	return lowest, true
}

// FindMax returns the largest value and its position. When the maximum occurs
// more than once, the last occurrence wins. ok is false for empty input.
func FindMax(values []float64) (highest Extremum, ok bool) {
	if len(values) == 0 {
		return Extremum{}, false
	}

	highest = Extremum{Value: values[0]}
	for i, v := range values {
		if v >= highest.Value {
			highest = Extremum{Value: v, Index: i}
		}
	}
	return highest, true
}
