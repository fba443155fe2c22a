// Package amplitude extracts the scalar amplitude statistics the magnitude
// formulas consume from a processed trace.
package amplitude

import (
	"errors"
	"math"
)

// ErrEmptyTrace is returned when a trace holds no samples.
var ErrEmptyTrace = errors.New("amplitude: empty trace")

// ZeroToPeak returns the maximum absolute sample value. For Wood-Anderson
// magnitude input the data must already be corrected to the target response,
// in meters.
func ZeroToPeak(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyTrace
	}
	peak := 0.0
	for _, v := range data {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak, nil
}

// PeakToPeak returns |min| + |max| of the samples in native digitizer units.
func PeakToPeak(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyTrace
	}
	minVal, maxVal := data[0], data[0]
	for _, v := range data[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return math.Abs(minVal) + math.Abs(maxVal), nil
}
