package levels

import "earshot/internal/stats"

// DynamicRangeDB returns the peak-to-RMS spread of buf in decibels.
// Silence has no measurable dynamic range and yields 0.
func DynamicRangeDB(buf []float64) float64 {
	rms := stats.RMS(buf)
	if rms <= 0 {
		return 0
	}
	return stats.DBFS(stats.Peak(buf)) - stats.DBFS(rms)
}
