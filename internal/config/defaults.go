package config

const (
	defaultClipThreshold   = 0.95
	defaultNoiseWindowMS   = 50.0
	defaultNoisePercentile = 0.2
	defaultLagSearchMS     = 200.0
	defaultLagStep         = 1
	defaultAnalysisRateHz  = 8000
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultOutputColor     = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Analysis: Analysis{
			ClipThreshold:   defaultClipThreshold,
			NoiseWindowMS:   defaultNoiseWindowMS,
			NoisePercentile: defaultNoisePercentile,
			LagSearchMS:     defaultLagSearchMS,
			LagStep:         defaultLagStep,
			AnalysisRateHz:  defaultAnalysisRateHz,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Color: defaultOutputColor,
		},
	}
}
