package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"earshot/internal/diagnostics"
	"earshot/internal/stats"
)

var reportPrinter = message.NewPrinter(language.English)

// renderReport writes the human-readable diagnostic report. decorated
// allows emoji markers; plain output sticks to ASCII so piped reports stay
// grep-friendly.
func renderReport(w io.Writer, path string, report *diagnostics.Report, decorated bool) {
	fmt.Fprintf(w, "Capture: %s\n", path)
	fmt.Fprintf(w, "Run:     %s\n\n", report.RunID)

	fmt.Fprintln(w, renderTable("Capture", []string{"Sample rate", "Frames", "Duration"}, [][]string{{
		fmt.Sprintf("%d Hz", report.SampleRate),
		reportPrinter.Sprintf("%d", report.Frames),
		fmt.Sprintf("%.2f s", report.DurationSeconds),
	}}, []columnAlignment{alignRight, alignRight, alignRight}))

	fmt.Fprintln(w, renderTable("Levels",
		[]string{"Metric", "Left (mic)", "Right (ref)"},
		levelRows(report),
		[]columnAlignment{alignLeft, alignRight, alignRight}))

	fmt.Fprintln(w, renderTable("Crosstalk / Echo",
		[]string{"Metric", "Value"},
		crossRows(report),
		[]columnAlignment{alignLeft, alignRight}))

	if len(report.Hints) > 0 {
		fmt.Fprintln(w, "Hints:")
		marker := "*"
		if decorated {
			marker = "⚠️ "
		}
		for _, hint := range report.Hints {
			fmt.Fprintf(w, "  %s %s\n", marker, hint.Message)
		}
		fmt.Fprintln(w)
	}

	verdict := "OK: capture looks suitable for voice processing"
	if report.Verdict == diagnostics.VerdictReview {
		verdict = "REVIEW: capture has issues worth addressing (see hints)"
	}
	fmt.Fprintln(w, verdict)
}

func levelRows(report *diagnostics.Report) [][]string {
	left, right := report.Left, report.Right
	return [][]string{
		{"RMS", formatDB(left.RMSDB), formatDB(right.RMSDB)},
		{"Peak", formatDB(left.PeakDB), formatDB(right.PeakDB)},
		{"DC offset", fmt.Sprintf("%+.5f", left.DCOffset), fmt.Sprintf("%+.5f", right.DCOffset)},
		{"Noise floor", formatDB(left.NoiseFloorDB), formatDB(right.NoiseFloorDB)},
		{"Clipped samples", formatClip(left.ClipCount, left.ClipPercent), formatClip(right.ClipCount, right.ClipPercent)},
		{"Dynamic range", fmt.Sprintf("%.1f dB", left.DynamicRangeDB), fmt.Sprintf("%.1f dB", right.DynamicRangeDB)},
	}
}

func crossRows(report *diagnostics.Report) [][]string {
	cross := report.Cross
	rows := [][]string{
		{"Analysis rate", fmt.Sprintf("%d Hz", cross.AnalysisRateHz)},
		{"Best lag", fmt.Sprintf("%d samples (%+.1f ms)", cross.BestLagSamples, cross.BestLagMS)},
		{"Best-lag correlation", fmt.Sprintf("%.3f", cross.BestLagCorrelation)},
		{"Correlation (zero lag)", fmt.Sprintf("%.3f", cross.Correlation)},
	}
	rows = append(rows, leakageRow("Leakage ref->mic", cross.LeakageRightToLeft))
	rows = append(rows, leakageRow("Leakage mic->ref", cross.LeakageLeftToRight))
	return rows
}

func leakageRow(label string, leak diagnostics.Leakage) []string {
	if !leak.Valid {
		return []string{label, "n/a"}
	}
	if leak.GainDB <= stats.SilenceFloorDB {
		return []string{label, fmt.Sprintf("%+.6f (no leakage)", leak.Gain)}
	}
	return []string{label, fmt.Sprintf("%+.6f (%.1f dB)", leak.Gain, leak.GainDB)}
}

// formatDB renders a decibel value, mapping the silence sentinel to a
// readable placeholder.
func formatDB(db float64) string {
	if db <= stats.SilenceFloorDB {
		return "silence"
	}
	return strings.TrimSpace(fmt.Sprintf("%6.1f dBFS", db))
}

func formatClip(count int, percent float64) string {
	if count == 0 {
		return "none"
	}
	return reportPrinter.Sprintf("%d (%.2f%%)", count, percent)
}
