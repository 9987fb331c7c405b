package stats_test

import (
	"math"
	"testing"

	"earshot/internal/stats"
)

func TestRMSEmptyBufferIsZero(t *testing.T) {
	if got := stats.RMS(nil); got != 0 {
		t.Fatalf("RMS(nil) = %v, want 0", got)
	}
	if got := stats.RMS([]float64{}); got != 0 {
		t.Fatalf("RMS(empty) = %v, want 0", got)
	}
}

func TestRMSAllZeroBuffer(t *testing.T) {
	buf := make([]float64, 512)
	if got := stats.RMS(buf); got != 0 {
		t.Fatalf("RMS(zeros) = %v, want 0", got)
	}
	if got := stats.Peak(buf); got != 0 {
		t.Fatalf("Peak(zeros) = %v, want 0", got)
	}
}

func TestRMSConstantSignal(t *testing.T) {
	buf := []float64{0.5, -0.5, 0.5, -0.5}
	if got := stats.RMS(buf); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("RMS = %v, want 0.5", got)
	}
}

func TestRMSSineWave(t *testing.T) {
	n := 48000
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * 100 * float64(i) / float64(n))
	}
	want := 1 / math.Sqrt2
	if got := stats.RMS(buf); math.Abs(got-want) > 1e-6 {
		t.Fatalf("sine RMS = %v, want %v", got, want)
	}
}

func TestPeakTracksLargestMagnitude(t *testing.T) {
	buf := []float64{0.1, -0.9, 0.3}
	if got := stats.Peak(buf); got != 0.9 {
		t.Fatalf("Peak = %v, want 0.9", got)
	}
	if got := stats.Peak(nil); got != 0 {
		t.Fatalf("Peak(nil) = %v, want 0", got)
	}
}

func TestMean(t *testing.T) {
	if got := stats.Mean(nil); got != 0 {
		t.Fatalf("Mean(nil) = %v, want 0", got)
	}
	buf := []float64{0.25, 0.25, 0.25, 0.25}
	if got := stats.Mean(buf); got != 0.25 {
		t.Fatalf("Mean = %v, want 0.25", got)
	}
}

func TestDBFS(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"full scale", 1.0, 0},
		{"half scale", 0.5, 20 * math.Log10(0.5)},
		{"zero", 0, stats.SilenceFloorDB},
		{"negative", -0.3, stats.SilenceFloorDB},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stats.DBFS(tc.in); math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("DBFS(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
