package trace

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Merge errors.
var (
	ErrEmptyStream        = errors.New("trace: empty stream")
	ErrInvalidSampleRate  = errors.New("trace: sample rate must be positive")
	ErrSampleRateMismatch = errors.New("trace: sample rate mismatch")
	ErrChannelMismatch    = errors.New("trace: channel id mismatch")
)

// Trace is a continuous sample series for one channel of one station.
type Trace struct {
	Network    string
	Station    string
	Location   string
	Channel    string
	SampleRate float64
	Start      time.Time
	Data       []float64
}

// Component returns the component code derived from the channel, i.e. the
// last letter of codes like HHZ or EHE. Empty for an empty channel.
func (tr Trace) Component() string {
	if tr.Channel == "" {
		return ""
	}
	return strings.ToUpper(tr.Channel[len(tr.Channel)-1:])
}

// End returns the time of the last sample.
func (tr Trace) End() time.Time {
	if len(tr.Data) == 0 || tr.SampleRate <= 0 {
		return tr.Start
	}
	d := time.Duration(float64(len(tr.Data)-1) / tr.SampleRate * float64(time.Second))
	return tr.Start.Add(d)
}

// Clone returns a copy of the trace with its own data slice.
func (tr Trace) Clone() Trace {
	out := tr
	out.Data = append([]float64(nil), tr.Data...)
	return out
}

func (tr Trace) id() string {
	return fmt.Sprintf("%s.%s.%s.%s", tr.Network, tr.Station, tr.Location, tr.Channel)
}

// Stream is an ordered collection of traces.
type Stream []Trace

// Filter selects traces by header fields. Empty fields match everything;
// all comparisons are case-insensitive. Component matches the last letter
// of the channel code, so it can be used independently of the channel field.
type Filter struct {
	Network   string
	Station   string
	Location  string
	Channel   string
	Component string
}

func (f Filter) matches(tr Trace) bool {
	switch {
	case f.Network != "" && !strings.EqualFold(f.Network, tr.Network):
		return false
	case f.Station != "" && !strings.EqualFold(f.Station, tr.Station):
		return false
	case f.Location != "" && !strings.EqualFold(f.Location, tr.Location):
		return false
	case f.Channel != "" && !strings.EqualFold(f.Channel, tr.Channel):
		return false
	case f.Component != "" && !strings.EqualFold(f.Component, tr.Component()):
		return false
	}
	return true
}

// Select returns the traces matching the filter, in stream order.
func (s Stream) Select(f Filter) Stream {
	var out Stream
	for _, tr := range s {
		if f.matches(tr) {
			out = append(out, tr)
		}
	}
	return out
}

// Count returns the number of traces in the stream.
func (s Stream) Count() int { return len(s) }

// Merge combines all traces of a stream into one continuous trace.
//
// Traces must share channel id and sample rate. They are ordered by start
// time; internal gaps are filled by linear interpolation between the
// bounding samples, favoring continuity over marking data as missing.
// Where traces overlap, the later trace wins.
func Merge(s Stream) (Trace, error) {
	if len(s) == 0 {
		return Trace{}, ErrEmptyStream
	}

	first := s[0]
	if first.SampleRate <= 0 {
		return Trace{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, first.SampleRate)
	}
	for _, tr := range s[1:] {
		if tr.SampleRate != first.SampleRate {
			return Trace{}, fmt.Errorf("%w: %v vs %v", ErrSampleRateMismatch, first.SampleRate, tr.SampleRate)
		}
		if tr.id() != first.id() {
			return Trace{}, fmt.Errorf("%w: %s vs %s", ErrChannelMismatch, first.id(), tr.id())
		}
	}

	sorted := append(Stream(nil), s...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	out := sorted[0].Clone()
	fs := out.SampleRate

	for _, tr := range sorted[1:] {
		if len(tr.Data) == 0 {
			continue
		}
		// Sample index of the incoming trace relative to the merged start.
		offset := int(math.Round(tr.Start.Sub(out.Start).Seconds() * fs))
		if offset < 0 {
			offset = 0
		}

		if gap := offset - len(out.Data); gap > 0 {
			out.Data = fillGap(out.Data, tr.Data[0], gap)
		}

		for i, v := range tr.Data {
			if idx := offset + i; idx < len(out.Data) {
				out.Data[idx] = v
			} else {
				out.Data = append(out.Data, v)
			}
		}
	}

	return out, nil
}

// fillGap appends n linearly interpolated samples between the last value of
// data and next.
func fillGap(data []float64, next float64, n int) []float64 {
	last := 0.0
	if len(data) > 0 {
		last = data[len(data)-1]
	}
	for k := 1; k <= n; k++ {
		frac := float64(k) / float64(n+1)
		data = append(data, last+frac*(next-last))
	}
	return data
}
