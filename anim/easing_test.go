package anim

import (
	"math"
	"testing"
)

func TestEaseEndpoints(t *testing.T) {
	eases := map[string]EaseFunc{
		"linear":      Linear,
		"power2inout": Power2InOut,
		"power3in":    Power3In,
		"power3out":   Power3Out,
		"sineinout":   SineInOut,
		"elasticout":  ElasticOut(1, 0.4),
	}
	for name, ease := range eases {
		if got := ease(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := ease(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		if got := ease(-0.5); got != 0 {
			t.Errorf("%s(-0.5) = %v, want 0", name, got)
		}
		if got := ease(1.5); got != 1 {
			t.Errorf("%s(1.5) = %v, want 1", name, got)
		}
	}
}

// TestElasticOutOvershoots verifies the elastic ease passes beyond its target before settling
func TestElasticOutOvershoots(t *testing.T) {
	ease := ElasticOut(1, 0.4)
	peak := 0.0
	for i := 1; i < 100; i++ {
		peak = math.Max(peak, ease(float64(i)/100))
	}
	if peak <= 1 {
		t.Errorf("expected overshoot above 1, peak %v", peak)
	}
	if v := ease(0.99); math.Abs(v-1) > 0.01 {
		t.Errorf("expected settled value near 1 at 0.99, got %v", v)
	}
}

func TestPower2InOutSymmetry(t *testing.T) {
	for i := 0; i <= 10; i++ {
		x := float64(i) / 10
		a := Power2InOut(x)
		b := 1 - Power2InOut(1-x)
		if math.Abs(a-b) > 1e-12 {
			t.Errorf("asymmetric at %v: %v vs %v", x, a, b)
		}
	}
}

func TestMonotonicEases(t *testing.T) {
	for name, ease := range map[string]EaseFunc{
		"power3in":  Power3In,
		"power3out": Power3Out,
		"sineinout": SineInOut,
	} {
		prev := ease(0)
		for i := 1; i <= 100; i++ {
			v := ease(float64(i) / 100)
			if v < prev {
				t.Errorf("%s decreased at step %d: %v < %v", name, i, v, prev)
			}
			prev = v
		}
	}
}
