// Package richter computes Richter local magnitude (ML) and radiated seismic
// energy for the network from calibrated waveform data.
//
// The pipeline mirrors classical Wood-Anderson magnitude practice: select the
// waveform of one station/component, merge it into a single continuous trace,
// replace the recorded instrument response with the standard Wood-Anderson
// response, take the zero-to-peak amplitude in millimeters and apply the
// network calibration log10(A0) = -1.4, then convert magnitude to energy via
// the Gutenberg-Richter relation.
//
// Stream-level functions return (value, ok, err). A false ok with a nil error
// is the expected "no data" outcome for a station with no matching waveform
// in the requested window; errors are reserved for catalog and domain faults.
package richter
