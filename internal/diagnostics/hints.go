package diagnostics

import (
	"fmt"
	"math"
)

// Thresholds the hint heuristics fire at.
const (
	dcOffsetHintLimit    = 0.01
	noiseFloorHintDB     = -50.0
	leakageHintDB        = -20.0
	echoCorrelationLimit = 0.3
)

// Verdict is the roll-up of all hints: OK when nothing fired, Review when
// the capture deserves a closer look. Informational only.
type Verdict string

const (
	VerdictOK     Verdict = "ok"
	VerdictReview Verdict = "review"
)

// Hint is a heuristic recommendation derived from the metrics.
type Hint struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func deriveHints(report *Report) []Hint {
	var hints []Hint

	if math.Abs(report.Left.DCOffset) > dcOffsetHintLimit || math.Abs(report.Right.DCOffset) > dcOffsetHintLimit {
		hints = append(hints, Hint{
			Code:    "dc_offset",
			Message: "Non-trivial DC offset detected; consider high-pass filtering at ~80-120 Hz.",
		})
	}

	if report.Left.NoiseFloorDB > noiseFloorHintDB {
		hints = append(hints, Hint{
			Code:    "noise_floor",
			Message: "Mic noise floor is relatively high; enable stronger noise suppression and consider a soft gate.",
		})
	}

	if clip := report.Left.ClipCount + report.Right.ClipCount; clip > 0 {
		hints = append(hints, Hint{
			Code: "clipping",
			Message: fmt.Sprintf("Clipping detected (%d samples, L %.2f%% / R %.2f%%); lower the capture gain.",
				clip, report.Left.ClipPercent, report.Right.ClipPercent),
		})
	}

	if leak := report.Cross.LeakageRightToLeft; leak.Valid && leak.Gain != 0 && leak.GainDB > leakageHintDB {
		hints = append(hints, Hint{
			Code:    "leakage",
			Message: "Significant speaker-to-mic leakage; improve echo cancellation, reduce speaker volume, or use a headset.",
		})
	}

	if math.Abs(report.Cross.BestLagCorrelation) > echoCorrelationLimit && report.Cross.BestLagSamples != 0 {
		hints = append(hints, Hint{
			Code: "echo_delay",
			Message: fmt.Sprintf("Measurable echo correlation at %.1f ms delay; delay alignment prior to AEC may help.",
				math.Abs(report.Cross.BestLagMS)),
		})
	}

	return hints
}

func verdictFor(hints []Hint) Verdict {
	if len(hints) == 0 {
		return VerdictOK
	}
	return VerdictReview
}
