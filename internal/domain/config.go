package domain

import "time"

// LoadingMode decides when the busy indicator is shown.
type LoadingMode string

const (
	// LoadingInitial shows the indicator only until the first reading arrives.
	LoadingInitial LoadingMode = "initial"
	// LoadingAlways shows the indicator on every fetch, including background refetches.
	LoadingAlways LoadingMode = "always"
)

// Config represents the tempdial configuration loaded from tempdial.yaml.
type Config struct {
	Source   SourceConfig
	Range    Range
	Override OverrideConfig
	Display  DisplayConfig
	Log      LogConfig
}

type SourceConfig struct {
	Interval    time.Duration
	Latency     time.Duration
	Timeout     time.Duration
	Retries     int
	FailureRate float64
}

type OverrideConfig struct {
	Window time.Duration
}

type DisplayConfig struct {
	Loading LoadingMode
}

type LogConfig struct {
	MaxSizeMB  int
	MaxBackups int
}

// DefaultConfig provides sane defaults if tempdial.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Interval: 5 * time.Second,
			Latency:  1 * time.Second,
			Timeout:  10 * time.Second,
			Retries:  3,
		},
		Range: DefaultRange(),
		Override: OverrideConfig{
			Window: 10 * time.Second,
		},
		Display: DisplayConfig{
			Loading: LoadingInitial,
		},
		Log: LogConfig{
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}
