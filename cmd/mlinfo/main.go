// Command mlinfo computes Richter local magnitude and seismic energy for a
// station of the network from a waveform sample file.
//
// Usage:
//
//	mlinfo [flags]
//
// Examples:
//
//	mlinfo -list
//	mlinfo -station MEPAS -rate 100 -file samples.txt
//	mlinfo -station MEPUS -rate 100 -component Z -file samples.txt
//	mlinfo -analog 50
//
// The sample file holds one digitizer count per line; blank lines and lines
// starting with # are skipped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/merapilab/richter"
	"github.com/merapilab/richter/response"
	"github.com/merapilab/richter/trace"
)

func main() {
	station := flag.String("station", "", "station code, e.g. MEPAS")
	network := flag.String("network", richter.DefaultNetwork, "network code")
	component := flag.String("component", richter.DefaultComponent, "component code (E, N or Z)")
	channel := flag.String("channel", "", "restrict selection to one channel code, e.g. HHZ")
	rate := flag.Float64("rate", 100, "sample rate of the input file in Hz")
	file := flag.String("file", "", "waveform sample file, one count per line")
	analog := flag.Float64("analog", 0, "compute magnitude from a Deles analog peak-to-peak amplitude in mm")
	list := flag.Bool("list", false, "list the station response catalog")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mlinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Computes Richter local magnitude and seismic energy from waveform samples.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mlinfo -list\n")
		fmt.Fprintf(os.Stderr, "  mlinfo -station MEPAS -rate 100 -file samples.txt\n")
		fmt.Fprintf(os.Stderr, "  mlinfo -analog 50\n")
	}
	flag.Parse()

	switch {
	case *list:
		printCatalog()
	case *analog > 0:
		if err := printAnalog(*analog); err != nil {
			fatal(err)
		}
	case *station != "" && *file != "":
		if err := printMagnitude(*station, *network, *component, *channel, *rate, *file); err != nil {
			fatal(err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "mlinfo: %v\n", err)
	os.Exit(1)
}

func printCatalog() {
	stations := response.Stations()
	sort.Strings(stations)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATION\tSENSITIVITY\tGAIN\tPOLES\tZEROS")
	for _, name := range stations {
		m, err := response.Lookup(name, "")
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%d\t%d\n", name, formatSensitivity(m), m.Gain, len(m.Poles), len(m.Zeros))
	}
	w.Flush()
}

func formatSensitivity(m response.Model) string {
	if m.Resolved() {
		return fmt.Sprintf("%g", m.Sensitivity)
	}
	parts := make([]string, 0, len(m.ComponentSensitivity))
	for component, sensitivity := range m.ComponentSensitivity {
		parts = append(parts, fmt.Sprintf("%s=%g", component, sensitivity))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

func printAnalog(peakToPeakMM float64) error {
	ml, err := richter.AnalogMagnitude(peakToPeakMM)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Peak-to-peak\t%g mm\n", peakToPeakMM)
	fmt.Fprintf(w, "ML\t%.3f\n", ml)
	fmt.Fprintf(w, "Energy\t%.3f x 10^12 ergs\n", richter.SeismicEnergy(ml))
	return w.Flush()
}

func printMagnitude(station, network, component, channel string, rate float64, file string) error {
	data, err := readSamples(file)
	if err != nil {
		return err
	}

	cha := channel
	if cha == "" {
		cha = "HH" + strings.ToUpper(component)
	}
	stream := trace.Stream{{
		Network:    network,
		Station:    station,
		Channel:    cha,
		SampleRate: rate,
		Data:       data,
	}}

	opts := []richter.Option{
		richter.WithNetwork(network),
		richter.WithComponent(component),
	}
	if channel != "" {
		opts = append(opts, richter.WithChannel(channel))
	}

	wa, ok, err := richter.WoodAndersonAmplitude(stream, station, opts...)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no data for station %s", station)
	}

	app, _, err := richter.PeakToPeakAmplitude(stream, station, opts...)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Station\t%s.%s (%s)\n", network, station, cha)
	fmt.Fprintf(w, "Samples\t%d @ %g Hz\n", len(data), rate)
	fmt.Fprintf(w, "WA amplitude\t%.6g m\n", wa)
	fmt.Fprintf(w, "Peak-to-peak\t%g counts\n", app)

	ml, ok, err := richter.LocalMagnitude(stream, station, opts...)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w, "ML\tno usable signal")
		return w.Flush()
	}
	fmt.Fprintf(w, "ML\t%.3f\n", ml)
	fmt.Fprintf(w, "Energy\t%.3f x 10^12 ergs\n", richter.SeismicEnergy(ml))
	return w.Flush()
}

func readSamples(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var data []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return data, nil
}
