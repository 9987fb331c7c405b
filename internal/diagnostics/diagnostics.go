package diagnostics

import (
	"log/slog"

	"github.com/google/uuid"

	"earshot/internal/crosschannel"
	"earshot/internal/levels"
	"earshot/internal/logging"
	"earshot/internal/pcm"
	"earshot/internal/stats"
)

// Params holds the analysis thresholds. All fields are explicit so the
// engine stays free of configuration and environment coupling.
type Params struct {
	// ClipThreshold is the magnitude at or above which a sample counts as
	// clipped.
	ClipThreshold float64
	// NoiseWindowMS and NoisePercentile control the noise-floor estimate.
	NoiseWindowMS   float64
	NoisePercentile float64
	// LagSearchMS bounds the echo lag search window on either side of
	// zero; LagStep is the scan stride in samples at the analysis rate.
	LagSearchMS float64
	LagStep     int
	// AnalysisRateHz is the target rate both channels are decimated to
	// before the lag search and leakage fits.
	AnalysisRateHz int
}

// DefaultParams returns the stock thresholds.
func DefaultParams() Params {
	return Params{
		ClipThreshold:   0.95,
		NoiseWindowMS:   50,
		NoisePercentile: 0.2,
		LagSearchMS:     200,
		LagStep:         1,
		AnalysisRateHz:  8000,
	}
}

// ChannelMetrics holds the per-channel measurements.
type ChannelMetrics struct {
	RMS            float64 `json:"rms"`
	RMSDB          float64 `json:"rms_db"`
	Peak           float64 `json:"peak"`
	PeakDB         float64 `json:"peak_db"`
	DCOffset       float64 `json:"dc_offset"`
	NoiseFloorDB   float64 `json:"noise_floor_db"`
	ClipCount      int     `json:"clip_count"`
	ClipPercent    float64 `json:"clip_percent"`
	DynamicRangeDB float64 `json:"dynamic_range_db"`
}

// Leakage holds a least-squares leakage fit between two channels. Valid is
// false when the fit had no input at all.
type Leakage struct {
	Valid  bool    `json:"valid"`
	Gain   float64 `json:"gain"`
	GainDB float64 `json:"gain_db"`
}

// CrossMetrics holds the joint channel measurements. Lag values are in
// samples at AnalysisRateHz, not at the capture rate.
type CrossMetrics struct {
	AnalysisRateHz     int     `json:"analysis_rate_hz"`
	BestLagSamples     int     `json:"best_lag_samples"`
	BestLagMS          float64 `json:"best_lag_ms"`
	BestLagCorrelation float64 `json:"best_lag_correlation"`
	Correlation        float64 `json:"correlation"`
	// LeakageRightToLeft estimates how much of the right (reference)
	// channel appears inside the left (mic) channel, and vice versa.
	LeakageRightToLeft Leakage `json:"leakage_right_to_left"`
	LeakageLeftToRight Leakage `json:"leakage_left_to_right"`
}

// Report is the metrics bundle for one analysis run. It is constructed
// once by Analyze and never mutated afterwards.
type Report struct {
	RunID           string         `json:"run_id"`
	SampleRate      int            `json:"sample_rate"`
	Frames          int            `json:"frames"`
	DurationSeconds float64        `json:"duration_seconds"`
	Left            ChannelMetrics `json:"left"`
	Right           ChannelMetrics `json:"right"`
	Cross           CrossMetrics   `json:"cross"`
	Hints           []Hint         `json:"hints,omitempty"`
	Verdict         Verdict        `json:"verdict"`
}

// Analyze measures both channels of stereo and returns the assembled
// report. logger is used for debug traces only; nil disables logging.
func Analyze(stereo *pcm.Stereo, params Params, logger *slog.Logger) *Report {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "diagnostics")

	report := &Report{
		RunID:           uuid.NewString(),
		SampleRate:      stereo.SampleRate,
		Frames:          stereo.Frames(),
		DurationSeconds: stereo.Duration(),
		Left:            analyzeChannel(stereo.Left, stereo.SampleRate, params),
		Right:           analyzeChannel(stereo.Right, stereo.SampleRate, params),
		Cross:           analyzeCross(stereo, params),
	}
	report.Hints = deriveHints(report)
	report.Verdict = verdictFor(report.Hints)

	logger.Debug("analysis complete",
		logging.String("run_id", report.RunID),
		logging.Int("frames", report.Frames),
		logging.Int("best_lag_samples", report.Cross.BestLagSamples),
		logging.Float64("best_lag_correlation", report.Cross.BestLagCorrelation),
		logging.Int("hints", len(report.Hints)),
	)
	return report
}

func analyzeChannel(buf []float64, sampleRate int, params Params) ChannelMetrics {
	rms := stats.RMS(buf)
	peak := stats.Peak(buf)
	clip := levels.Clipping(buf, params.ClipThreshold)
	return ChannelMetrics{
		RMS:            rms,
		RMSDB:          stats.DBFS(rms),
		Peak:           peak,
		PeakDB:         stats.DBFS(peak),
		DCOffset:       stats.Mean(buf),
		NoiseFloorDB:   levels.NoiseFloorDB(buf, sampleRate, params.NoiseWindowMS, params.NoisePercentile),
		ClipCount:      clip.Count,
		ClipPercent:    clip.Percent,
		DynamicRangeDB: levels.DynamicRangeDB(buf),
	}
}

// analyzeCross runs the joint measurements on decimated equal-length
// copies. Decimation bounds the exhaustive lag search; there is no runtime
// cancellation.
func analyzeCross(stereo *pcm.Stereo, params Params) CrossMetrics {
	step := pcm.DecimationStep(stereo.SampleRate, params.AnalysisRateHz)
	left := pcm.Decimate(stereo.Left, step)
	right := pcm.Decimate(stereo.Right, step)
	left, right = pcm.TruncateSameLen(left, right)

	analysisRate := stereo.SampleRate
	if step > 0 {
		analysisRate = stereo.SampleRate / step
	}

	lag, lagCorr := crosschannel.BestLag(left, right, analysisRate, params.LagSearchMS, params.LagStep)

	cross := CrossMetrics{
		AnalysisRateHz:     analysisRate,
		BestLagSamples:     lag,
		BestLagCorrelation: lagCorr,
		Correlation:        crosschannel.Pearson(left, right),
	}
	if analysisRate > 0 {
		cross.BestLagMS = float64(lag) / float64(analysisRate) * 1000
	}

	if gain, db, ok := crosschannel.LeakageGain(left, right); ok {
		cross.LeakageRightToLeft = Leakage{Valid: true, Gain: gain, GainDB: db}
	}
	if gain, db, ok := crosschannel.LeakageGain(right, left); ok {
		cross.LeakageLeftToRight = Leakage{Valid: true, Gain: gain, GainDB: db}
	}
	return cross
}
