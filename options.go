package richter

// Default selection values for the network.
const (
	DefaultNetwork   = "VG"
	DefaultComponent = "Z"
)

type computeConfig struct {
	network    string
	component  string
	location   string
	channel    string
	waterLevel float64
}

// Option adjusts waveform selection and simulation parameters.
type Option func(*computeConfig)

func defaultConfig() computeConfig {
	return computeConfig{
		network:   DefaultNetwork,
		component: DefaultComponent,
	}
}

// WithNetwork selects a network code other than the default VG.
func WithNetwork(network string) Option {
	return func(cfg *computeConfig) {
		if network != "" {
			cfg.network = network
		}
	}
}

// WithComponent selects a component other than the default Z.
func WithComponent(component string) Option {
	return func(cfg *computeConfig) {
		if component != "" {
			cfg.component = component
		}
	}
}

// WithLocation restricts selection to one location code.
func WithLocation(location string) Option {
	return func(cfg *computeConfig) {
		cfg.location = location
	}
}

// WithChannel restricts selection to one channel code, e.g. HHZ.
func WithChannel(channel string) Option {
	return func(cfg *computeConfig) {
		cfg.channel = channel
	}
}

// WithWaterLevel overrides the deconvolution water level. The network policy
// is zero: no damping floor, low-frequency blow-up accepted.
func WithWaterLevel(level float64) Option {
	return func(cfg *computeConfig) {
		if level > 0 {
			cfg.waterLevel = level
		}
	}
}

func applyOptions(opts []Option) computeConfig {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
