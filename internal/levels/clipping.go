package levels

import "math"

// ClipStats reports how many samples sit at or above the clipping
// threshold.
type ClipStats struct {
	Count   int
	Percent float64
}

// Clipping counts samples in buf whose magnitude reaches threshold. An
// empty buffer reports zero without failing.
func Clipping(buf []float64, threshold float64) ClipStats {
	var count int
	for _, v := range buf {
		if math.Abs(v) >= threshold {
			count++
		}
	}
	result := ClipStats{Count: count}
	if len(buf) > 0 {
		result.Percent = 100 * float64(count) / float64(len(buf))
	}
	return result
}
