// Package trace provides the waveform container consumed by the magnitude
// pipeline: continuous per-channel sample series, stream selection by
// network/station/component, and gap-filling merge of fragmented series.
package trace
