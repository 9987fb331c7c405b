package pcm

// DecimationStep returns the stride that brings sampleRate down to at most
// targetHz. A target at or above the source rate yields 1 (no decimation).
func DecimationStep(sampleRate, targetHz int) int {
	if targetHz <= 0 || sampleRate <= targetHz {
		return 1
	}
	return sampleRate / targetHz
}

// Decimate keeps every step-th sample of buf. A step of 1 or less returns
// buf unchanged. No anti-alias filtering is applied.
func Decimate(buf []float64, step int) []float64 {
	if step <= 1 {
		return buf
	}
	out := make([]float64, 0, len(buf)/step+1)
	for i := 0; i < len(buf); i += step {
		out = append(out, buf[i])
	}
	return out
}

// TruncateSameLen trims a and b to their common prefix length.
func TruncateSameLen(a, b []float64) ([]float64, []float64) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	return a[:n], b[:n]
}
