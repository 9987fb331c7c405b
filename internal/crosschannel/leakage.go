package crosschannel

import (
	"math"

	"earshot/internal/stats"
)

// LeakageGain estimates the scalar gain g minimizing the squared error of
// target ≈ g·reference over their common prefix, via the closed-form
// solution g = Σ(reference·target) / Σ(reference²). The decibel form is
// 20·log10(|g|), or the silence sentinel when g is exactly 0.
//
// ok is false only when both buffers are empty. A reference with zero
// energy yields (0, 0, true): nothing can leak from a dead channel.
func LeakageGain(target, reference []float64) (gain, gainDB float64, ok bool) {
	n := len(target)
	if len(reference) < n {
		n = len(reference)
	}
	if n == 0 && len(target) == 0 && len(reference) == 0 {
		return 0, 0, false
	}

	var refEnergy, cross float64
	for i := 0; i < n; i++ {
		r := reference[i]
		refEnergy += r * r
		cross += r * target[i]
	}
	if refEnergy <= 0 {
		return 0, 0, true
	}

	gain = cross / refEnergy
	gainDB = stats.SilenceFloorDB
	if math.Abs(gain) > 0 {
		gainDB = 20 * math.Log10(math.Abs(gain))
	}
	return gain, gainDB, true
}
