package config

import "strings"

func (c *Config) normalize() {
	c.normalizeAnalysis()
	c.normalizeLogging()
	c.normalizeOutput()
}

func (c *Config) normalizeAnalysis() {
	if c.Analysis.ClipThreshold == 0 {
		c.Analysis.ClipThreshold = defaultClipThreshold
	}
	if c.Analysis.NoiseWindowMS == 0 {
		c.Analysis.NoiseWindowMS = defaultNoiseWindowMS
	}
	if c.Analysis.NoisePercentile == 0 {
		c.Analysis.NoisePercentile = defaultNoisePercentile
	}
	if c.Analysis.LagSearchMS == 0 {
		c.Analysis.LagSearchMS = defaultLagSearchMS
	}
	if c.Analysis.LagStep == 0 {
		c.Analysis.LagStep = defaultLagStep
	}
	if c.Analysis.AnalysisRateHz == 0 {
		c.Analysis.AnalysisRateHz = defaultAnalysisRateHz
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultOutputColor
	}
}
