package levels

import (
	"sort"

	"earshot/internal/stats"
)

// NoiseFloorDB estimates the noise floor of buf as the RMS level at the
// low-percentile boundary of short non-overlapping windows, in dBFS.
// windowMS is the window length in milliseconds and percentile a fraction
// in (0, 1]; percentile 0.2 reads the boundary of the quietest 20% of
// windows, which keeps the estimate robust to occasional loud windows.
//
// Buffers shorter than one window, and buffers that produce no complete
// window, fall back to the whole-buffer RMS.
func NoiseFloorDB(buf []float64, sampleRate int, windowMS, percentile float64) float64 {
	window := int(float64(sampleRate) * windowMS / 1000)
	if window < 1 {
		window = 1
	}
	if len(buf) < window {
		return stats.DBFS(stats.RMS(buf))
	}

	var windowRMS []float64
	for i := 0; i < len(buf)-window; i += window {
		windowRMS = append(windowRMS, stats.RMS(buf[i:i+window]))
	}
	if len(windowRMS) == 0 {
		return stats.DBFS(stats.RMS(buf))
	}

	sort.Float64s(windowRMS)
	idx := int(float64(len(windowRMS))*percentile) - 1
	if idx < 0 {
		idx = 0
	}
	return stats.DBFS(windowRMS[idx])
}
