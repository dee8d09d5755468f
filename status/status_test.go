package status

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	a := m.Get("frames")
	b := m.Get("frames")
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("value = %d, want 3", b.Load())
	}
	if !m.Has("frames") || m.Has("missing") {
		t.Error("Has mismatch")
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("shared").Add(1)
			}
		}()
	}
	wg.Wait()

	if got := m.Get("shared").Load(); got != 1600 {
		t.Errorf("shared = %d, want 1600", got)
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("b").Set(2)
	m.Get("a").Set(1)
	m.Get("c").Set(3)

	var keys []string
	m.Range(func(k string, v *AtomicFloat) {
		keys = append(keys, k)
	})
	if strings.Join(keys, ",") != "a,b,c" {
		t.Errorf("range order = %v", keys)
	}
}

func TestAtomicZeroValues(t *testing.T) {
	var f AtomicFloat
	var s AtomicString
	if f.Get() != 0 || s.Load() != "" {
		t.Error("zero values not empty")
	}
	f.Set(0.25)
	s.Store("connecting")
	if f.Get() != 0.25 || s.Load() != "connecting" {
		t.Error("stored values not returned")
	}
}

func TestRegistryLogValue(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyFrames).Store(120)
	r.Floats.Get(KeyIntensity).Set(1)
	r.Strings.Get(KeyStage).Store("features")

	if r.TotalCount() != 3 {
		t.Errorf("TotalCount() = %d, want 3", r.TotalCount())
	}

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("stopped", "status", r)

	out := buf.String()
	for _, want := range []string{"status.hero.frames=120", "status.wave.intensity=1", "status.flow.stage=features"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}
