package crosschannel

import (
	"math"

	"earshot/internal/pcm"
	"earshot/internal/stats"
)

// pearsonWindow caps the number of samples Pearson inspects so the cheap
// zero-lag report stays cheap on long captures.
const pearsonWindow = 44100

// CorrelationAtLag returns the Pearson correlation coefficient between a
// and b after shifting them by lag samples. Positive lag means b leads a by
// lag samples: a[lag:] is correlated against the start of b. Negative lag
// is the opposite alignment, so a signal appearing in b later than in a
// peaks at a negative lag. Returns 0 when the overlap is empty or either
// segment has no variance.
func CorrelationAtLag(a, b []float64, lag int) float64 {
	var a2, b2 []float64
	switch {
	case lag == 0:
		a2, b2 = pcm.TruncateSameLen(a, b)
	case lag > 0:
		if lag >= len(a) {
			return 0
		}
		a2, b2 = pcm.TruncateSameLen(a[lag:], b)
	default:
		if -lag >= len(b) {
			return 0
		}
		b2, a2 = pcm.TruncateSameLen(b[-lag:], a)
	}
	return pearson(a2, b2)
}

// Pearson returns the zero-lag correlation coefficient over at most the
// first pearsonWindow samples of each buffer.
func Pearson(a, b []float64) float64 {
	n := pearsonWindow
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	return pearson(a[:n], b[:n])
}

// pearson computes the mean-centered correlation of two equal-length
// segments. Degenerate segments (empty or constant) yield 0.
func pearson(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	meanA := stats.Mean(a)
	meanB := stats.Mean(b)
	var num, varA, varB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		num += da * db
		varA += da * da
		varB += db * db
	}
	if varA <= 0 || varB <= 0 {
		return 0
	}
	return num / math.Sqrt(varA*varB)
}
