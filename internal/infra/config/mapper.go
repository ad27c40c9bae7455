package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/tempdial/internal/domain"
)

// MapConfig overlays the DTO on domain.DefaultConfig and validates the result.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	t := y.Tempdial

	var err error
	if cfg.Source.Interval, err = positiveDuration(path, "source.interval", t.Source.Interval, cfg.Source.Interval); err != nil {
		return domain.DefaultConfig(), err
	}
	if cfg.Source.Timeout, err = positiveDuration(path, "source.timeout", t.Source.Timeout, cfg.Source.Timeout); err != nil {
		return domain.DefaultConfig(), err
	}
	if cfg.Override.Window, err = positiveDuration(path, "override.window", t.Override.Window, cfg.Override.Window); err != nil {
		return domain.DefaultConfig(), err
	}

	if s := strings.TrimSpace(t.Source.Latency); s != "" {
		d, perr := time.ParseDuration(s)
		if perr != nil {
			return domain.DefaultConfig(), invalidField(path, "source.latency", perr.Error())
		}
		if d < 0 {
			return domain.DefaultConfig(), invalidField(path, "source.latency", "must not be negative")
		}
		cfg.Source.Latency = d
	}

	if t.Source.Retries != nil {
		if *t.Source.Retries < 0 {
			return domain.DefaultConfig(), invalidField(path, "source.retries", "must not be negative")
		}
		cfg.Source.Retries = *t.Source.Retries
	}
	if t.Source.FailureRate != nil {
		p := *t.Source.FailureRate
		if p < 0 || p > 1 {
			return domain.DefaultConfig(), invalidField(path, "source.failure_rate", "must be within [0, 1]")
		}
		cfg.Source.FailureRate = p
	}

	if t.Range.Min != nil {
		cfg.Range.Min = *t.Range.Min
	}
	if t.Range.Max != nil {
		cfg.Range.Max = *t.Range.Max
	}
	if cfg.Range.Min >= cfg.Range.Max {
		return domain.DefaultConfig(), invalidField(path, "range", fmt.Sprintf("min (%d) must be below max (%d)", cfg.Range.Min, cfg.Range.Max))
	}

	if s := strings.TrimSpace(t.Display.Loading); s != "" {
		mode, perr := parseLoadingMode(s)
		if perr != nil {
			return domain.DefaultConfig(), invalidField(path, "display.loading", perr.Error())
		}
		cfg.Display.Loading = mode
	}

	if t.Log.MaxSizeMB != nil {
		if *t.Log.MaxSizeMB <= 0 {
			return domain.DefaultConfig(), invalidField(path, "log.max_size_mb", "must be positive")
		}
		cfg.Log.MaxSizeMB = *t.Log.MaxSizeMB
	}
	if t.Log.MaxBackups != nil {
		if *t.Log.MaxBackups < 0 {
			return domain.DefaultConfig(), invalidField(path, "log.max_backups", "must not be negative")
		}
		cfg.Log.MaxBackups = *t.Log.MaxBackups
	}

	return cfg, nil
}

// ToYAML maps a domain config back to its file representation.
func ToYAML(cfg domain.Config) YAMLConfig {
	retries := cfg.Source.Retries
	failure := cfg.Source.FailureRate
	lo, hi := cfg.Range.Min, cfg.Range.Max
	size, backups := cfg.Log.MaxSizeMB, cfg.Log.MaxBackups

	return YAMLConfig{
		Tempdial: YAMLTempdial{
			Source: YAMLSource{
				Interval:    cfg.Source.Interval.String(),
				Latency:     cfg.Source.Latency.String(),
				Timeout:     cfg.Source.Timeout.String(),
				Retries:     &retries,
				FailureRate: &failure,
			},
			Range:    YAMLRange{Min: &lo, Max: &hi},
			Override: YAMLOverride{Window: cfg.Override.Window.String()},
			Display:  YAMLDisplay{Loading: string(cfg.Display.Loading)},
			Log:      YAMLLog{MaxSizeMB: &size, MaxBackups: &backups},
		},
	}
}

func positiveDuration(path, field, raw string, def time.Duration) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, invalidField(path, field, err.Error())
	}
	if d <= 0 {
		return 0, invalidField(path, field, "must be positive")
	}
	return d, nil
}

func parseLoadingMode(s string) (domain.LoadingMode, error) {
	switch domain.LoadingMode(strings.ToLower(s)) {
	case domain.LoadingInitial:
		return domain.LoadingInitial, nil
	case domain.LoadingAlways:
		return domain.LoadingAlways, nil
	default:
		return "", fmt.Errorf("unsupported loading mode %q (expected initial|always)", s)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
