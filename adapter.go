package richter

import (
	"github.com/merapilab/richter/response"
	"github.com/merapilab/richter/simulate"
	"github.com/merapilab/richter/trace"
)

// selectTrace picks the station's matching waveform out of the stream and
// collapses it to one continuous trace, gap-filling by interpolation when the
// window arrived fragmented. ok is false when nothing matches.
func selectTrace(stream trace.Stream, station string, cfg computeConfig) (trace.Trace, bool, error) {
	matched := stream.Select(trace.Filter{
		Network:   cfg.network,
		Station:   station,
		Location:  cfg.location,
		Channel:   cfg.channel,
		Component: cfg.component,
	})
	if matched.Count() == 0 {
		return trace.Trace{}, false, nil
	}
	if matched.Count() == 1 {
		return matched[0], true, nil
	}

	merged, err := trace.Merge(matched)
	if err != nil {
		return trace.Trace{}, false, err
	}
	return merged, true, nil
}

// correctedTrace prepares the Wood-Anderson corrected trace for one station:
// selection, merge, then response removal and simulation with the network's
// zero water level unless overridden. ok is false when the station has no
// data in the stream.
func correctedTrace(stream trace.Stream, station string, cfg computeConfig) (trace.Trace, bool, error) {
	tr, ok, err := selectTrace(stream, station, cfg)
	if err != nil || !ok {
		return trace.Trace{}, ok, err
	}

	remove, err := response.Lookup(station, cfg.component)
	if err != nil {
		return trace.Trace{}, false, err
	}

	corrected, err := simulate.Apply(tr.Data, simulate.Config{
		SampleRate: tr.SampleRate,
		Remove:     remove,
		Simulate:   response.WoodAnderson(),
		WaterLevel: cfg.waterLevel,
	})
	if err != nil {
		return trace.Trace{}, false, err
	}

	tr.Data = corrected
	return tr, true, nil
}
