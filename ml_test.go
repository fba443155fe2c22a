package richter

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/merapilab/richter/internal/testutil"
	"github.com/merapilab/richter/response"
	"github.com/merapilab/richter/trace"
)

var t0 = time.Date(2019, 7, 31, 12, 0, 0, 0, time.UTC)

// identityStream returns a stream whose single trace carries the standard
// Wood-Anderson response itself, so removal and simulation cancel and the
// corrected trace equals the input.
func identityStream(amplitude float64) trace.Stream {
	return trace.Stream{{
		Network:    "VG",
		Station:    response.WoodAndersonKey,
		Channel:    "HHZ",
		SampleRate: 1024,
		Start:      t0,
		Data:       testutil.Sine(8, 1024, amplitude, 1024),
	}}
}

func TestCalibratedMagnitude(t *testing.T) {
	got, err := CalibratedMagnitude(1)
	if err != nil {
		t.Fatal(err)
	}
	if got != CalibrationConstant {
		t.Fatalf("CalibratedMagnitude(1) = %v, want exactly 1.4", got)
	}

	got, err = CalibratedMagnitude(10)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNearlyEqual(t, got, 2.4, 1e-12)
}

func TestCalibratedMagnitudeDomain(t *testing.T) {
	for _, a := range []float64{0, -1, -0.001} {
		if _, err := CalibratedMagnitude(a); !errors.Is(err, ErrNonPositiveAmplitude) {
			t.Errorf("CalibratedMagnitude(%v): err = %v, want ErrNonPositiveAmplitude", a, err)
		}
	}
}

func TestAnalogMagnitudeRegression(t *testing.T) {
	cases := []struct {
		peakToPeak float64
		want       float64
	}{
		{10, 1.30289},
		{50, 2.00186},
		{113, 2.35597},
	}
	for _, tc := range cases {
		got, err := AnalogMagnitude(tc.peakToPeak)
		if err != nil {
			t.Fatalf("AnalogMagnitude(%v): %v", tc.peakToPeak, err)
		}
		testutil.RequireNearlyEqual(t, got, tc.want, 1e-3)
	}
}

func TestAnalogMagnitudeDomain(t *testing.T) {
	if _, err := AnalogMagnitude(0); !errors.Is(err, ErrNonPositiveAmplitude) {
		t.Fatalf("AnalogMagnitude(0): err = %v, want ErrNonPositiveAmplitude", err)
	}
}

func TestSeismicEnergy(t *testing.T) {
	// log E = 11.8 + 1.5 * 2/3 = 12.8, so E = 10^0.8 in 10^12 ergs.
	got := SeismicEnergy(2.0 / 3.0)
	testutil.RequireNearlyEqual(t, got, math.Pow(10, 0.8), 1e-3)
}

func TestEnergyMagnitudeRoundTrip(t *testing.T) {
	// CalibratedMagnitude(10^(m-1.4)) recovers m, so the energies agree.
	for _, m := range []float64{0.1, 2.0 / 3.0, 1.0, 2.5, 4.2} {
		ml, err := CalibratedMagnitude(math.Pow(10, m-CalibrationConstant))
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireNearlyEqual(t, SeismicEnergy(ml), SeismicEnergy(m), 1e-9*SeismicEnergy(m))
	}
}

func TestNoDataPropagation(t *testing.T) {
	stream := trace.Stream{{
		Network:    "VG",
		Station:    "MELAB",
		Channel:    "HHZ",
		SampleRate: 100,
		Start:      t0,
		Data:       []float64{1, 2, 3},
	}}

	// MEPAS has no trace in this stream: every stage must decline with
	// ok=false and no error.
	type streamFunc func(trace.Stream, string, ...Option) (float64, bool, error)
	for name, fn := range map[string]streamFunc{
		"WoodAndersonAmplitude": WoodAndersonAmplitude,
		"LocalMagnitude":        LocalMagnitude,
		"PeakToPeakAmplitude":   PeakToPeakAmplitude,
		"EnergyFromStream":      EnergyFromStream,
	} {
		v, ok, err := fn(stream, "MEPAS")
		if err != nil {
			t.Fatalf("%s: err = %v, want nil", name, err)
		}
		if ok {
			t.Fatalf("%s: ok = true, want false for no data", name)
		}
		if v != 0 {
			t.Fatalf("%s: value = %v, want 0 for no data", name, v)
		}
	}
}

func TestLocalMagnitudeAllZeroSignal(t *testing.T) {
	stream := identityStream(1)
	stream[0].Data = make([]float64, 1024)

	_, ok, err := LocalMagnitude(stream, response.WoodAndersonKey)
	if err != nil {
		t.Fatalf("err = %v, want nil for all-zero signal", err)
	}
	if ok {
		t.Fatal("ok = true, want false: zero amplitude is no usable signal")
	}

	// The amplitude itself stays observable as a genuine zero.
	wa, ok, err := WoodAndersonAmplitude(stream, response.WoodAndersonKey)
	if err != nil || !ok {
		t.Fatalf("WoodAndersonAmplitude: ok = %v, err = %v, want true, nil", ok, err)
	}
	if wa != 0 {
		t.Fatalf("WoodAndersonAmplitude = %v, want 0", wa)
	}
}

func TestRegistryErrorsSurface(t *testing.T) {
	stream := trace.Stream{{
		Network:    "VG",
		Station:    "NOPE",
		Channel:    "HHZ",
		SampleRate: 100,
		Start:      t0,
		Data:       []float64{1, 2, 3},
	}}

	_, _, err := LocalMagnitude(stream, "NOPE")
	if !errors.Is(err, response.ErrUnknownStation) {
		t.Fatalf("err = %v, want ErrUnknownStation", err)
	}

	stream[0].Station = "MEPAS"
	stream[0].Channel = "HHE"
	_, _, err = LocalMagnitude(stream, "MEPAS", WithComponent("E"))
	if !errors.Is(err, response.ErrUnsupportedComponent) {
		t.Fatalf("err = %v, want ErrUnsupportedComponent", err)
	}
}

func TestWoodAndersonAmplitudeIdentity(t *testing.T) {
	// Removing and simulating the identical response recovers the peak.
	wa, ok, err := WoodAndersonAmplitude(identityStream(1), response.WoodAndersonKey)
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v, want true, nil", ok, err)
	}
	testutil.RequireNearlyEqual(t, wa, 1.0, 1e-6)
}

func TestLocalMagnitudeIdentity(t *testing.T) {
	// A 1 m Wood-Anderson peak is 1000 mm: ML = log10(1000) + 1.4 = 4.4.
	ml, ok, err := LocalMagnitude(identityStream(1), response.WoodAndersonKey)
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v, want true, nil", ok, err)
	}
	testutil.RequireNearlyEqual(t, ml, 4.4, 1e-6)
}

func TestEnergyFromStreamIdentity(t *testing.T) {
	energy, ok, err := EnergyFromStream(identityStream(1), response.WoodAndersonKey)
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v, want true, nil", ok, err)
	}
	testutil.RequireNearlyEqual(t, energy, SeismicEnergy(4.4), 1e-3*SeismicEnergy(4.4))
}

func TestPeakToPeakAmplitude(t *testing.T) {
	stream := trace.Stream{{
		Network:    "VG",
		Station:    "MEPAS",
		Channel:    "HHZ",
		SampleRate: 100,
		Start:      t0,
		Data:       []float64{-120, 340, 20},
	}}

	app, ok, err := PeakToPeakAmplitude(stream, "MEPAS")
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v, want true, nil", ok, err)
	}
	if app != 460 {
		t.Fatalf("PeakToPeakAmplitude = %v, want 460", app)
	}
}

func TestMergedSelectionFeedsPipeline(t *testing.T) {
	// The same identity window split into two fragments must still produce
	// the full-peak amplitude after the gapless merge.
	full := identityStream(1)[0]
	a, b := full, full
	a.Data = full.Data[:512:512]
	b.Data = full.Data[512:]
	b.Start = t0.Add(500 * time.Millisecond)

	wa, ok, err := WoodAndersonAmplitude(trace.Stream{a, b}, response.WoodAndersonKey)
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v, want true, nil", ok, err)
	}
	testutil.RequireNearlyEqual(t, wa, 1.0, 1e-6)
}

func TestOptionsNarrowSelection(t *testing.T) {
	stream := identityStream(1)
	stream[0].Network = "XX"

	if _, ok, _ := WoodAndersonAmplitude(stream, response.WoodAndersonKey); ok {
		t.Fatal("default VG network must not match an XX trace")
	}

	wa, ok, err := WoodAndersonAmplitude(stream, response.WoodAndersonKey, WithNetwork("XX"))
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v, want true, nil", ok, err)
	}
	testutil.RequireNearlyEqual(t, wa, 1.0, 1e-6)
}
