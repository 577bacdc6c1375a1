package core

// ClockConfig defines common tick-timing settings for trajectory sources.
type ClockConfig struct {
	RateHz float64
	Ticks  int
}

// ClockOption mutates a ClockConfig.
type ClockOption func(*ClockConfig)

// DefaultClockConfig returns sensible defaults for interactive tracking use.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		RateHz: 60,
		Ticks:  600,
	}
}

// WithRateHz sets the nominal tick rate.
func WithRateHz(rateHz float64) ClockOption {
	return func(cfg *ClockConfig) {
		if rateHz > 0 {
			cfg.RateHz = rateHz
		}
	}
}

// WithTicks sets the default trajectory length in ticks.
func WithTicks(ticks int) ClockOption {
	return func(cfg *ClockConfig) {
		if ticks > 0 {
			cfg.Ticks = ticks
		}
	}
}

// ApplyClockOptions applies zero or more options to the default config.
func ApplyClockOptions(opts ...ClockOption) ClockConfig {
	cfg := DefaultClockConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
