package response

import (
	"errors"
	"fmt"
	"strings"
)

// Lookup errors.
var (
	ErrUnknownStation       = errors.New("response: unknown station")
	ErrUnknownComponent     = errors.New("response: unknown component")
	ErrUnsupportedComponent = errors.New("response: unsupported component")
)

// WoodAndersonKey is the catalog key of the standard Wood-Anderson response.
const WoodAndersonKey = "WOOD_ANDERSON"

// Model describes the pole-zero response of one sensor plus digitizer chain.
//
// Gain is the A0 normalization factor computed in rad/s. Poles and zeros are
// given in rad/s as well. Sensitivity is the scale factor in counts per
// meter/second for the resolved component; for catalog entries calibrated per
// component it is zero until a component is resolved via [Lookup], and the
// per-component values live in ComponentSensitivity instead.
type Model struct {
	Sensitivity          float64
	ComponentSensitivity map[string]float64
	Gain                 float64
	Zeros                []complex128
	Poles                []complex128
}

// Resolved reports whether the model carries a single usable sensitivity.
func (m Model) Resolved() bool {
	return m.Sensitivity > 0
}

// clone returns a deep copy so callers can never reach catalog storage.
func (m Model) clone() Model {
	out := Model{
		Sensitivity: m.Sensitivity,
		Gain:        m.Gain,
		Zeros:       append([]complex128(nil), m.Zeros...),
		Poles:       append([]complex128(nil), m.Poles...),
	}
	if m.ComponentSensitivity != nil {
		out.ComponentSensitivity = make(map[string]float64, len(m.ComponentSensitivity))
		for k, v := range m.ComponentSensitivity {
			out.ComponentSensitivity[k] = v
		}
	}
	return out
}

// Sensitivity is in counts per meter/second, i.e. the inverse of the velocity
// channel value on the digitizer calibration sheet. Gain (A0) and all poles
// and zeros are in rad/s.
//
// Broadband stations (MEPAS, MELAB, MEGRA) use values from the sensor and
// digitizer calibration sheets; sensitivity is twice the single-ended value.
// Short-period stations (MEDEL, MEPUS) use values from the PDCC NRL tool.
// Only the Z channel is calibrated so far.
var catalog = map[string]Model{
	// Wood-Anderson static magnification 2800 per PITSA; note that
	// P. Bormann, New Manual of Seismological Observatory Practice,
	// IASPEI Chapter 3, page 24 lists 2080.
	WoodAndersonKey: {
		Sensitivity: 2800,
		Gain:        1,
		Zeros:       []complex128{0},
		Poles: []complex128{
			complex(-6.2832, -4.7124),
			complex(-6.2832, 4.7124),
		},
	},
	"MEPAS": {
		ComponentSensitivity: map[string]float64{"Z": 994035785.2882704},
		Gain:                 571507691.7712862,
		Zeros:                []complex128{0, 0},
		Poles: []complex128{
			complex(-0.1485973325, 0.1485973325),
			complex(-0.1485973325, -0.1485973325),
			complex(-1130.9733552923, 0),
			complex(-1005.3096491487, 0),
			complex(-502.6548245744, 0),
		},
	},
	"MELAB": {
		ComponentSensitivity: map[string]float64{"Z": 989119683.4817014},
		Gain:                 571507691.7712862,
		Zeros:                []complex128{0, 0},
		Poles: []complex128{
			complex(-0.1485973325, 0.1485973325),
			complex(-0.1485973325, -0.1485973325),
			complex(-1130.9733552923, 0),
			complex(-1005.3096491487, 0),
			complex(-502.6548245744, 0),
		},
	},
	"MEDEL": {
		ComponentSensitivity: map[string]float64{"Z": 134645742.0},
		Gain:                 1,
		Zeros:                []complex128{0, 0},
		Poles: []complex128{
			complex(-4.398, 4.487),
			complex(-4.398, -4.487),
		},
	},
	"MEPUS": {
		ComponentSensitivity: map[string]float64{"Z": 134645742.0},
		Gain:                 1,
		Zeros:                []complex128{0, 0},
		Poles: []complex128{
			complex(-4.398, 4.487),
			complex(-4.398, -4.487),
		},
	},
	"MEGRA": {
		ComponentSensitivity: map[string]float64{"Z": 989119683.4817014},
		Gain:                 571507691.7712862,
		Zeros:                []complex128{0, 0},
		Poles: []complex128{
			complex(-0.1485973325, 0.1485973325),
			complex(-0.1485973325, -0.1485973325),
			complex(-1130.9733552923, 0),
			complex(-1005.3096491487, 0),
			complex(-502.6548245744, 0),
		},
	},
}

// Stations returns the catalog station codes, Wood-Anderson key included.
func Stations() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	return out
}

// WoodAnderson returns a copy of the standard Wood-Anderson response.
func WoodAnderson() Model {
	return catalog[WoodAndersonKey].clone()
}

// Lookup returns the response model for a station.
//
// With an empty component the raw catalog entry is returned and the caller
// must resolve the per-component sensitivity before use. With a component
// code (E, N or Z, case-insensitive) the entry's sensitivity is resolved to
// that component's scalar. Entries defined with a single scalar sensitivity,
// such as the Wood-Anderson standard, are exempt from resolution.
//
// The returned model is always a copy; the catalog is never mutated.
func Lookup(station, component string) (Model, error) {
	entry, ok := catalog[station]
	if !ok {
		return Model{}, fmt.Errorf("%w: %q", ErrUnknownStation, station)
	}

	if component == "" {
		return entry.clone(), nil
	}

	code := strings.ToUpper(component)
	switch code {
	case "E", "N", "Z":
	default:
		return Model{}, fmt.Errorf("%w: %q", ErrUnknownComponent, component)
	}

	out := entry.clone()
	if out.ComponentSensitivity == nil {
		// Scalar sensitivity applies to every component.
		return out, nil
	}

	sensitivity, ok := out.ComponentSensitivity[code]
	if !ok {
		return Model{}, fmt.Errorf("%w: %q on station %q", ErrUnsupportedComponent, component, station)
	}

	out.Sensitivity = sensitivity
	out.ComponentSensitivity = nil
	return out, nil
}
