// Package stats provides the scalar signal primitives shared by every
// analyzer: RMS, peak, arithmetic mean, and amplitude-to-dBFS conversion.
//
// All functions treat empty buffers as silence and return zero rather than
// failing, so callers can run a full analysis pass over pathological input
// without guarding every call site.
package stats

import "math"

// SilenceFloorDB is the sentinel returned by DBFS for non-positive
// amplitudes. It stands for "no measurable signal" and must not be
// interpreted as a real level.
const SilenceFloorDB = -999.0

// RMS returns the root-mean-square amplitude of buf, or 0 for an empty
// buffer.
func RMS(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	var sum float64
	for _, v := range buf {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(buf)))
}

// Peak returns the maximum absolute sample value in buf, or 0 for an empty
// buffer.
func Peak(buf []float64) float64 {
	var peak float64
	for _, v := range buf {
		if abs := math.Abs(v); abs > peak {
			peak = abs
		}
	}
	return peak
}

// Mean returns the arithmetic mean of buf, or 0 for an empty buffer. For a
// channel buffer this is the DC offset.
func Mean(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	var sum float64
	for _, v := range buf {
		sum += v
	}
	return sum / float64(len(buf))
}

// DBFS converts a linear amplitude to decibels relative to full scale.
// Non-positive amplitudes yield SilenceFloorDB instead of -Inf.
func DBFS(x float64) float64 {
	if x <= 0 {
		return SilenceFloorDB
	}
	return 20 * math.Log10(x)
}
