package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateOutput()
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.ClipThreshold <= 0 || c.Analysis.ClipThreshold > 1 {
		return errors.New("analysis.clip_threshold must be in (0, 1]")
	}
	if c.Analysis.NoiseWindowMS <= 0 {
		return errors.New("analysis.noise_window_ms must be positive")
	}
	if c.Analysis.NoisePercentile <= 0 || c.Analysis.NoisePercentile > 1 {
		return errors.New("analysis.noise_percentile must be in (0, 1]")
	}
	if c.Analysis.LagSearchMS <= 0 {
		return errors.New("analysis.lag_search_ms must be positive")
	}
	if c.Analysis.LagStep < 1 {
		return errors.New("analysis.lag_step must be at least 1")
	}
	if c.Analysis.AnalysisRateHz <= 0 {
		return errors.New("analysis.analysis_rate_hz must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("output.color must be auto, always, or never, got %q", c.Output.Color)
	}
}
