package richter

import (
	"errors"
	"fmt"
	"math"

	"github.com/merapilab/richter/amplitude"
	"github.com/merapilab/richter/trace"
)

// ErrNonPositiveAmplitude is returned when a calibration formula receives an
// amplitude outside the domain of the logarithm.
var ErrNonPositiveAmplitude = errors.New("richter: amplitude must be positive")

// CalibrationConstant is -log10(A0) for the network, so the effective A0
// normalization is 10^-1.4.
const CalibrationConstant = 1.4

// Correction ratios mapping the Deles analog station amplitude scale onto the
// calibrated scale.
const (
	analogK1 = 2800.0 / (0.13 * 27000.0)
	analogK2 = 20.0 / 50.0
	analogK3 = 3981.0 / 7943.0
)

const metersToMillimeters = 1000.0

// CalibratedMagnitude computes local magnitude from a Wood-Anderson
// zero-to-peak amplitude in millimeters:
//
//	ML = log10(a) - log10(A0) = log10(a) + 1.4
func CalibratedMagnitude(waAmplitudeMM float64) (float64, error) {
	if waAmplitudeMM <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrNonPositiveAmplitude, waAmplitudeMM)
	}
	return math.Log10(waAmplitudeMM) + CalibrationConstant, nil
}

// AnalogMagnitude computes local magnitude from a peak-to-peak amplitude in
// millimeters read off the Deles analog station. The fixed correction ratios
// map the analog scale to the calibrated one and the peak-to-peak value is
// halved to its zero-to-peak equivalent before calibration.
func AnalogMagnitude(peakToPeakMM float64) (float64, error) {
	zeroToPeak := peakToPeakMM / 2
	return CalibratedMagnitude(analogK1 * analogK2 * analogK3 * zeroToPeak)
}

// SeismicEnergy converts local magnitude to radiated energy via the
// Gutenberg-Richter relation log E = 11.8 + 1.5 M, returned in units of
// 10^12 ergs. Extreme magnitudes overflow to +Inf in floating point.
func SeismicEnergy(magnitude float64) float64 {
	return math.Pow(10, 11.8+1.5*magnitude) / 1e12
}

// WoodAndersonAmplitude computes the Wood-Anderson zero-to-peak amplitude in
// meters for one station. ok is false when the stream holds no matching data.
func WoodAndersonAmplitude(stream trace.Stream, station string, opts ...Option) (float64, bool, error) {
	cfg := applyOptions(opts)

	tr, ok, err := correctedTrace(stream, station, cfg)
	if err != nil || !ok {
		return 0, ok, err
	}

	peak, err := amplitude.ZeroToPeak(tr.Data)
	if err != nil {
		return 0, false, err
	}
	return peak, true, nil
}

// LocalMagnitude computes the Richter local magnitude for one station.
//
// ok is false when the stream holds no matching data, and also when the
// Wood-Anderson amplitude comes out non-positive: an all-zero window means
// no usable signal, not a domain error.
func LocalMagnitude(stream trace.Stream, station string, opts ...Option) (float64, bool, error) {
	waAmplitude, ok, err := WoodAndersonAmplitude(stream, station, opts...)
	if err != nil || !ok {
		return 0, ok, err
	}
	if waAmplitude <= 0 {
		return 0, false, nil
	}

	ml, err := CalibratedMagnitude(waAmplitude * metersToMillimeters)
	if err != nil {
		return 0, false, err
	}
	return ml, true, nil
}

// PeakToPeakAmplitude computes the peak-to-peak amplitude of the selected
// trace in native digitizer units, without response correction. ok is false
// when the stream holds no matching data.
func PeakToPeakAmplitude(stream trace.Stream, station string, opts ...Option) (float64, bool, error) {
	cfg := applyOptions(opts)

	tr, ok, err := selectTrace(stream, station, cfg)
	if err != nil || !ok {
		return 0, ok, err
	}

	app, err := amplitude.PeakToPeak(tr.Data)
	if err != nil {
		return 0, false, err
	}
	return app, true, nil
}

// EnergyFromStream computes the radiated seismic energy for one station in
// units of 10^12 ergs. ok propagates the no-data outcome of LocalMagnitude.
func EnergyFromStream(stream trace.Stream, station string, opts ...Option) (float64, bool, error) {
	ml, ok, err := LocalMagnitude(stream, station, opts...)
	if err != nil || !ok {
		return 0, ok, err
	}
	return SeismicEnergy(ml), true, nil
}
