package metrics

import (
	"math"
	"sync"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"
)

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func TestApproximate(t *testing.T) {
	ext := Approximate{}.Measure("20px serif", "abcd")
	if !near(ext.Width, 48) || !near(ext.Height, 24) || !near(ext.Ascent, 16) {
		t.Errorf("Measure = %+v, want {48 24 16}", ext)
	}

	// Unparsable fonts fall back to DefaultSize.
	ext = Approximate{}.Measure("not a font", "ab")
	if !near(ext.Width, 12) || !near(ext.Height, 12) {
		t.Errorf("Measure(bad font) = %+v, want width 12 height 12", ext)
	}

	ext = Approximate{}.Measure("10px/2 serif", "")
	if ext.Width != 0 || !near(ext.Height, 20) || !near(ext.Ascent, 12) {
		t.Errorf("Measure(line height 2) = %+v", ext)
	}
}

func newTestProvider(t testing.TB) *FaceProvider {
	t.Helper()
	p, err := NewFaceProvider()
	if err != nil {
		t.Fatalf("NewFaceProvider() error = %v", err)
	}
	return p
}

func TestFaceProviderMeasure(t *testing.T) {
	p := newTestProvider(t)

	short := p.Measure("16px sans-serif", "Hi")
	long := p.Measure("16px sans-serif", "Hello world")
	if short.Width <= 0 || long.Width <= short.Width {
		t.Errorf("widths: short %v long %v", short.Width, long.Width)
	}
	if short.Height < 16 || short.Height > 24 {
		t.Errorf("Height = %v, want about 1.2 * 16", short.Height)
	}
	if short.Ascent <= 0 || short.Ascent >= short.Height {
		t.Errorf("Ascent = %v, want within (0, %v)", short.Ascent, short.Height)
	}

	double := p.Measure("32px sans-serif", "Hello world")
	if math.Abs(double.Width-2*long.Width) > 1 {
		t.Errorf("32px width %v, want about %v", double.Width, 2*long.Width)
	}

	if e := p.Measure("16px sans-serif", ""); e.Width != 0 || e.Height == 0 {
		t.Errorf("Measure(empty) = %+v", e)
	}
}

func TestFaceProviderVariants(t *testing.T) {
	p := newTestProvider(t)
	regular := p.Measure("16px sans-serif", "Hello world")
	bold := p.Measure("bold 16px sans-serif", "Hello world")
	if bold.Width <= regular.Width {
		t.Errorf("bold width %v not wider than regular %v", bold.Width, regular.Width)
	}

	mono := p.Measure("16px monospace", "iiii")
	monoW := p.Measure("16px monospace", "WWWW")
	if !near(mono.Width, monoW.Width) {
		t.Errorf("monospace widths differ: %v vs %v", mono.Width, monoW.Width)
	}

	// Unknown families resolve to the default family.
	unknown := p.Measure("16px 'No Such Font'", "Hello world")
	if !near(unknown.Width, regular.Width) {
		t.Errorf("unknown family width %v, want %v", unknown.Width, regular.Width)
	}
}

func TestFaceProviderUnparsableFont(t *testing.T) {
	p := newTestProvider(t)
	got := p.Measure("huge", "abc")
	want := Approximate{}.Measure("huge", "abc")
	if got != want {
		t.Errorf("Measure(unparsable) = %+v, want %+v", got, want)
	}
}

func TestFaceProviderNormalizesText(t *testing.T) {
	p := newTestProvider(t)
	composed := p.Measure("16px sans-serif", "caf\u00e9")
	decomposed := p.Measure("16px sans-serif", "cafe\u0301")
	if !near(composed.Width, decomposed.Width) {
		t.Errorf("NFC widths differ: %v vs %v", composed.Width, decomposed.Width)
	}
}

func TestFaceProviderFamilies(t *testing.T) {
	p, err := NewFaceProvider(
		WithoutBuiltins(),
		WithFamily("Custom", FamilyData{Regular: goregular.TTF}),
		WithDefaultFamily("custom"),
	)
	if err != nil {
		t.Fatalf("NewFaceProvider() error = %v", err)
	}
	spec, _ := ParseFont("bold 12px custom")
	if p.Typeface(spec) == nil {
		t.Error("Typeface(custom) = nil")
	}

	if _, err := NewFaceProvider(WithFamily("x", FamilyData{})); err == nil {
		t.Error("empty family data accepted")
	}
	if _, err := NewFaceProvider(WithFamily("x", FamilyData{Regular: []byte("junk")})); err == nil {
		t.Error("invalid font data accepted")
	}
	if _, err := NewFaceProvider(WithDefaultFamily("nope")); err == nil {
		t.Error("unknown default family accepted")
	}
}

func TestCached(t *testing.T) {
	var mu sync.Mutex
	calls := map[string]int{}
	inner := ProviderFunc(func(font, text string) Extent {
		mu.Lock()
		calls[font+"|"+text]++
		mu.Unlock()
		return Extent{Width: float64(len(text)), Height: 12}
	})

	c := NewCached(inner, 0)
	for i := 0; i < 3; i++ {
		c.Measure("10px a", "xy")
	}
	c.Measure("12px b", "xy")
	if calls["10px a|xy"] != 1 {
		t.Errorf("inner called %d times, want 1", calls["10px a|xy"])
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if n := c.Invalidate("10px a"); n != 1 {
		t.Errorf("Invalidate() = %d, want 1", n)
	}
	c.Measure("10px a", "xy")
	if calls["10px a|xy"] != 2 {
		t.Errorf("inner not called again after Invalidate")
	}
	if s := c.Stats(); s.Hits != 2 || s.Misses != 3 {
		t.Errorf("Stats = %+v", s)
	}
	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d", c.Len())
	}
}

func TestCachedMeasuresInParallel(t *testing.T) {
	var inside sync.WaitGroup
	inside.Add(2)
	inner := ProviderFunc(func(_, text string) Extent {
		// Returns only once both measurements are in flight.
		inside.Done()
		inside.Wait()
		return Extent{Width: float64(len(text))}
	})
	c := NewCached(inner, 0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		for _, text := range []string{"a", "bb"} {
			text := text
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Measure("10px sans-serif", text)
			}()
		}
		wg.Wait()
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("measurements of different texts were serialized")
	}
	if got := c.Measure("10px sans-serif", "bb").Width; got != 2 {
		t.Errorf("cached width = %v, want 2", got)
	}
}

func BenchmarkFaceProviderMeasure(b *testing.B) {
	p := newTestProvider(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Measure("14px sans-serif", "Hello world")
	}
}

func BenchmarkCachedMeasure(b *testing.B) {
	c := NewCached(newTestProvider(b), 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Measure("14px sans-serif", "Hello world")
	}
}

func TestFaceProviderShape(t *testing.T) {
	p := newTestProvider(t)
	sh, ok := p.Shape("16px sans-serif", "Hello")
	if !ok {
		t.Fatal("Shape() reported false")
	}
	if len(sh.Glyphs) != 5 || sh.Size != 16 || sh.Typeface == nil {
		t.Fatalf("Shape() = %d glyphs size %v", len(sh.Glyphs), sh.Size)
	}
	sum := 0.0
	for _, g := range sh.Glyphs {
		sum += g.Advance
	}
	if !near(sum, sh.Advance) {
		t.Errorf("sum of advances %v, want %v", sum, sh.Advance)
	}
	if w := p.Measure("16px sans-serif", "Hello").Width; !near(w, sh.Advance) {
		t.Errorf("Measure width %v, Shape advance %v", w, sh.Advance)
	}
	if _, ok := p.Shape("nonsense", "Hello"); ok {
		t.Error("Shape(unparsable font) reported true")
	}
}
