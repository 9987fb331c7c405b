package crosschannel

// BestLag scans every integer lag in [-maxlag, +maxlag] stepped by step and
// returns the lag with the greatest correlation along with that value.
// maxlag is derived from the search window maxMS at sampleRate. Comparison
// is strict greater-than, so on ties the first lag encountered (scanning
// from -maxlag upward) wins.
func BestLag(a, b []float64, sampleRate int, maxMS float64, step int) (int, float64) {
	maxlag := int(float64(sampleRate) * maxMS / 1000)
	if step < 1 {
		step = 1
	}
	best := 0
	bestCorr := -2.0
	for lag := -maxlag; lag <= maxlag; lag += step {
		if c := CorrelationAtLag(a, b, lag); c > bestCorr {
			bestCorr = c
			best = lag
		}
	}
	return best, bestCorr
}
