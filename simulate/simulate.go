package simulate

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/merapilab/richter/response"
)

// Simulation errors.
var (
	ErrEmptyInput         = errors.New("simulate: empty input")
	ErrInvalidSampleRate  = errors.New("simulate: sample rate must be positive")
	ErrUnresolvedResponse = errors.New("simulate: response sensitivity must be a positive scalar")
	ErrInvalidWaterLevel  = errors.New("simulate: water level must not be negative")
)

// Config holds the response pair and numerical parameters for one simulation.
type Config struct {
	// SampleRate of the input data in Hz.
	SampleRate float64

	// Remove is the recorded instrument response to deconvolve. Its
	// sensitivity must be resolved to a single scalar.
	Remove response.Model

	// Simulate is the synthetic target response to convolve, typically
	// the Wood-Anderson standard.
	Simulate response.Model

	// WaterLevel floors the removal response magnitude at WaterLevel times
	// its spectral maximum, preserving phase. Zero applies no floor; bins
	// where the removal response vanishes then map to zero output.
	WaterLevel float64
}

// Apply deconvolves cfg.Remove from data and convolves cfg.Simulate onto it.
//
// The input is zero-padded to a power of two for the FFT; the result is
// truncated back to the input length and rescaled by the ratio of the two
// sensitivities, so counts recorded through the removed instrument come out
// in the units of the simulated one.
func Apply(data []float64, cfg Config) ([]float64, error) {
	n := len(data)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, cfg.SampleRate)
	}
	if cfg.WaterLevel < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWaterLevel, cfg.WaterLevel)
	}
	if !cfg.Remove.Resolved() {
		return nil, fmt.Errorf("%w: remove model", ErrUnresolvedResponse)
	}
	if !cfg.Simulate.Resolved() {
		return nil, fmt.Errorf("%w: simulate model", ErrUnresolvedResponse)
	}

	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("simulate: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range data {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, err
	}

	hRemove := transferBins(cfg.Remove, cfg.SampleRate, fftSize)
	hSimulate := transferBins(cfg.Simulate, cfg.SampleRate, fftSize)

	if cfg.WaterLevel > 0 {
		applyWaterLevel(hRemove, cfg.WaterLevel)
	}

	for i := range freq {
		hr := hRemove[i]
		switch {
		case hr == 0 || cmplx.IsInf(hr) || cmplx.IsNaN(hr):
			freq[i] = 0
		default:
			freq[i] = freq[i] * hSimulate[i] / hr
		}
	}

	timeOut := make([]complex128, fftSize)
	if err := plan.Inverse(timeOut, freq); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(timeOut[i])
	}

	vecmath.ScaleBlock(out, out, cfg.Simulate.Sensitivity/cfg.Remove.Sensitivity)
	return out, nil
}

// transferBins evaluates the response transfer function at every FFT bin
// frequency, negative frequencies included.
func transferBins(m response.Model, sampleRate float64, size int) []complex128 {
	out := make([]complex128, size)
	for k := range out {
		f := binFrequency(k, size, sampleRate)
		out[k] = transfer(m, complex(0, 2*math.Pi*f))
	}
	return out
}

// binFrequency maps bin k of an FFT of the given size to its frequency in Hz,
// with the upper half of the spectrum folded to negative frequencies.
func binFrequency(k, size int, sampleRate float64) float64 {
	if k <= size/2 {
		return sampleRate * float64(k) / float64(size)
	}
	return sampleRate * float64(k-size) / float64(size)
}

// transfer evaluates H(s) = gain * prod(s - z) / prod(s - p) at s.
func transfer(m response.Model, s complex128) complex128 {
	num := complex(m.Gain, 0)
	for _, z := range m.Zeros {
		num *= s - z
	}
	den := complex(1, 0)
	for _, p := range m.Poles {
		den *= s - p
	}
	if den == 0 {
		return cmplx.Inf()
	}
	return num / den
}

// applyWaterLevel lifts bins whose magnitude falls below level times the
// spectral maximum up to that floor, keeping their phase. Bins that are
// exactly zero stay zero; Apply maps those to zero output.
func applyWaterLevel(h []complex128, level float64) {
	maxMag := 0.0
	for _, v := range h {
		if mag := cmplx.Abs(v); mag > maxMag && !math.IsInf(mag, 1) {
			maxMag = mag
		}
	}
	floor := level * maxMag
	if floor <= 0 {
		return
	}
	for i, v := range h {
		mag := cmplx.Abs(v)
		if mag > 0 && mag < floor {
			h[i] = v * complex(floor/mag, 0)
		}
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
