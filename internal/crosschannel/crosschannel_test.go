package crosschannel_test

import (
	"math"
	"math/rand"
	"testing"

	"earshot/internal/crosschannel"
	"earshot/internal/stats"
)

func noiseBuffer(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = rng.Float64()*2 - 1
	}
	return buf
}

// delayed returns a copy of buf shifted later by k samples, zero-padded at
// the front.
func delayed(buf []float64, k int) []float64 {
	out := make([]float64, len(buf))
	copy(out[k:], buf)
	return out
}

func TestSelfCorrelationAtZeroLagIsPerfect(t *testing.T) {
	buf := noiseBuffer(4096, 1)
	if got := crosschannel.CorrelationAtLag(buf, buf, 0); math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("corr = %v, want 1.0", got)
	}
}

func TestCorrelationDegenerateInputs(t *testing.T) {
	noise := noiseBuffer(256, 2)
	constant := make([]float64, 256)
	for i := range constant {
		constant[i] = 0.7
	}

	cases := []struct {
		name string
		a, b []float64
		lag  int
	}{
		{"empty a", nil, noise, 0},
		{"empty b", noise, nil, 0},
		{"constant a", constant, noise, 0},
		{"constant b", noise, constant, 0},
		{"lag beyond a", noise, noise, 300},
		{"negative lag beyond b", noise, noise, -300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := crosschannel.CorrelationAtLag(tc.a, tc.b, tc.lag); got != 0 {
				t.Fatalf("corr = %v, want 0", got)
			}
		})
	}
}

func TestCorrelationSymmetricUnderSwapAndNegation(t *testing.T) {
	a := noiseBuffer(2000, 3)
	b := noiseBuffer(2000, 4)
	for _, lag := range []int{1, 17, 250} {
		forward := crosschannel.CorrelationAtLag(a, b, lag)
		swapped := crosschannel.CorrelationAtLag(b, a, -lag)
		if math.Abs(forward-swapped) > 1e-9 {
			t.Errorf("lag %d: forward %v != swapped %v", lag, forward, swapped)
		}
	}
}

func TestBestLagRecoversSyntheticDelay(t *testing.T) {
	// Positive lag means b leads a, so delaying b by k peaks at -k and
	// delaying a by k peaks at +k.
	const sampleRate = 8000
	for _, k := range []int{0, 3, 40, 150} {
		a := noiseBuffer(sampleRate, 5)
		b := delayed(a, k)

		lag, corr := crosschannel.BestLag(a, b, sampleRate, 200, 1)
		if lag != -k {
			t.Errorf("b delayed %d: best lag = %d, want %d", k, lag, -k)
		}
		if corr < 0.999 {
			t.Errorf("b delayed %d: corr = %v, want ~1.0", k, corr)
		}

		lag, corr = crosschannel.BestLag(b, a, sampleRate, 200, 1)
		if lag != k {
			t.Errorf("a delayed %d: best lag = %d, want %d", k, lag, k)
		}
		if corr < 0.999 {
			t.Errorf("a delayed %d: corr = %v, want ~1.0", k, corr)
		}
	}
}

func TestBestLagTieBreakPrefersFirstScanned(t *testing.T) {
	// Constant buffers make every lag correlate at 0; the first lag
	// scanned (-maxlag) must win under strict greater-than.
	a := make([]float64, 100)
	b := make([]float64, 100)
	lag, corr := crosschannel.BestLag(a, b, 1000, 10, 1)
	if lag != -10 {
		t.Fatalf("lag = %d, want -10", lag)
	}
	if corr != 0 {
		t.Fatalf("corr = %v, want 0", corr)
	}
}

func TestBestLagStepSkipsLags(t *testing.T) {
	a := noiseBuffer(4000, 6)
	b := delayed(a, 10)
	lag, _ := crosschannel.BestLag(a, b, 8000, 10, 5)
	// With step 5 starting at -80, lag -10 is on the scan grid.
	if lag != -10 {
		t.Fatalf("lag = %d, want -10", lag)
	}
}

func TestLeakageGainIdentity(t *testing.T) {
	buf := noiseBuffer(1024, 7)
	gain, db, ok := crosschannel.LeakageGain(buf, buf)
	if !ok {
		t.Fatal("expected ok for non-empty input")
	}
	if math.Abs(gain-1.0) > 1e-12 {
		t.Fatalf("gain = %v, want 1.0", gain)
	}
	if math.Abs(db) > 1e-9 {
		t.Fatalf("db = %v, want 0", db)
	}
}

func TestLeakageGainScaledReference(t *testing.T) {
	ref := noiseBuffer(1024, 8)
	target := make([]float64, len(ref))
	for i, v := range ref {
		target[i] = 0.1 * v
	}
	gain, db, ok := crosschannel.LeakageGain(target, ref)
	if !ok {
		t.Fatal("expected ok")
	}
	if math.Abs(gain-0.1) > 1e-9 {
		t.Fatalf("gain = %v, want 0.1", gain)
	}
	if math.Abs(db+20) > 1e-6 {
		t.Fatalf("db = %v, want -20", db)
	}
}

func TestLeakageGainEmptyInputs(t *testing.T) {
	if _, _, ok := crosschannel.LeakageGain(nil, nil); ok {
		t.Fatal("expected ok=false for empty inputs")
	}
}

func TestLeakageGainDeadReference(t *testing.T) {
	target := noiseBuffer(256, 9)
	gain, db, ok := crosschannel.LeakageGain(target, make([]float64, 256))
	if !ok {
		t.Fatal("expected ok for dead reference")
	}
	if gain != 0 || db != 0 {
		t.Fatalf("gain, db = %v, %v, want 0, 0", gain, db)
	}
}

func TestLeakageGainZeroGainUsesSilenceSentinel(t *testing.T) {
	// Orthogonal signals: +1,-1 alternation against +1,+1,-1,-1 pattern
	// has zero cross energy, so g is exactly 0.
	ref := []float64{1, -1, 1, -1}
	target := []float64{1, 1, -1, -1}
	gain, db, ok := crosschannel.LeakageGain(target, ref)
	if !ok {
		t.Fatal("expected ok")
	}
	if gain != 0 {
		t.Fatalf("gain = %v, want 0", gain)
	}
	if db != stats.SilenceFloorDB {
		t.Fatalf("db = %v, want silence sentinel", db)
	}
}

func TestPearsonCapsSampleWindow(t *testing.T) {
	// Two buffers identical in the first second, diverging afterwards;
	// the capped report only sees the identical prefix.
	a := noiseBuffer(90000, 10)
	b := make([]float64, len(a))
	copy(b[:44100], a[:44100])
	for i := 44100; i < len(b); i++ {
		b[i] = -a[i]
	}
	if got := crosschannel.Pearson(a, b); math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("pearson = %v, want 1.0", got)
	}
}

func TestPearsonDegenerate(t *testing.T) {
	if got := crosschannel.Pearson(nil, nil); got != 0 {
		t.Fatalf("pearson(nil) = %v, want 0", got)
	}
	flat := make([]float64, 100)
	if got := crosschannel.Pearson(flat, flat); got != 0 {
		t.Fatalf("pearson(flat) = %v, want 0", got)
	}
}
