package main

import (
	"strings"
	"testing"

	"earshot/internal/diagnostics"
	"earshot/internal/stats"
)

func sampleReport() *diagnostics.Report {
	return &diagnostics.Report{
		RunID:           "11111111-2222-3333-4444-555555555555",
		SampleRate:      48000,
		Frames:          96000,
		DurationSeconds: 2.0,
		Left: diagnostics.ChannelMetrics{
			RMS: 0.1, RMSDB: -20, Peak: 0.5, PeakDB: -6.02,
			DCOffset: 0.0001, NoiseFloorDB: -62.5,
			ClipCount: 0, ClipPercent: 0, DynamicRangeDB: 14,
		},
		Right: diagnostics.ChannelMetrics{
			RMS: 0.3, RMSDB: -10.5, Peak: 1.0, PeakDB: 0,
			DCOffset: -0.002, NoiseFloorDB: -70,
			ClipCount: 1234, ClipPercent: 1.29, DynamicRangeDB: 10.5,
		},
		Cross: diagnostics.CrossMetrics{
			AnalysisRateHz:     8000,
			BestLagSamples:     42,
			BestLagMS:          5.25,
			BestLagCorrelation: 0.81,
			Correlation:        0.12,
			LeakageRightToLeft: diagnostics.Leakage{Valid: true, Gain: 0.05, GainDB: -26.02},
			LeakageLeftToRight: diagnostics.Leakage{Valid: true, Gain: 0.001, GainDB: -60},
		},
		Hints: []diagnostics.Hint{
			{Code: "clipping", Message: "Clipping detected; lower the capture gain."},
		},
		Verdict: diagnostics.VerdictReview,
	}
}

func TestRenderReportPlain(t *testing.T) {
	var sb strings.Builder
	renderReport(&sb, "capture.wav", sampleReport(), false)
	out := sb.String()

	for _, want := range []string{
		"Capture: capture.wav",
		"48000 Hz",
		"96,000",
		"2.00 s",
		"-20.0 dBFS",
		"none",
		"1,234 (1.29%)",
		"42 samples (+5.2 ms)",
		"0.810",
		"+0.050000 (-26.0 dB)",
		"Clipping detected",
		"REVIEW:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "⚠") {
		t.Error("plain report must not contain emoji markers")
	}
}

func TestRenderReportDecorated(t *testing.T) {
	var sb strings.Builder
	renderReport(&sb, "capture.wav", sampleReport(), true)
	if !strings.Contains(sb.String(), "⚠") {
		t.Error("decorated report should mark hints")
	}
}

func TestRenderReportSilenceSentinels(t *testing.T) {
	report := sampleReport()
	report.Left.RMSDB = stats.SilenceFloorDB
	report.Left.NoiseFloorDB = stats.SilenceFloorDB
	report.Hints = nil
	report.Verdict = diagnostics.VerdictOK

	var sb strings.Builder
	renderReport(&sb, "quiet.wav", report, false)
	out := sb.String()
	if !strings.Contains(out, "silence") {
		t.Errorf("sentinel not rendered as silence:\n%s", out)
	}
	if !strings.Contains(out, "OK:") {
		t.Errorf("missing OK verdict:\n%s", out)
	}
	if strings.Contains(out, "Hints:") {
		t.Error("hint section rendered with no hints")
	}
}

func TestFormatDB(t *testing.T) {
	if got := formatDB(-6.025); got != "-6.0 dBFS" {
		t.Errorf("formatDB = %q", got)
	}
	if got := formatDB(stats.SilenceFloorDB); got != "silence" {
		t.Errorf("formatDB(sentinel) = %q", got)
	}
}
