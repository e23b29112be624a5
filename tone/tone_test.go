package tone

import "math"
import "math/cmplx"
import "testing"

import "github.com/mjibson/go-dsp/fft"

func TestSynthesizeLength(t *testing.T) {
	tn := NewTone()
	tn.SampleRate = 8000
	tn.Duration = 2.5

	buf := tn.Synthesize()
	if len(buf) != 20000 {
		t.Fatalf("expected 20000 samples, got %d", len(buf))
	}
}

func TestSynthesizeNormalized(t *testing.T) {
	tn := NewTone()
	tn.SampleRate = 8000
	tn.Duration = 1.0

	buf := tn.Synthesize()

	var peak float64
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak > 1.0 {
		t.Fatalf("peak %v exceeds 1.0", peak)
	}
	if math.Abs(peak-1.0) > 1e-9 {
		t.Fatalf("peak %v, expected exactly 1.0 after normalization", peak)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	tn := NewTone()
	tn.SampleRate = 4096
	tn.Duration = 0.5

	a := tn.Synthesize()
	b := tn.Synthesize()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between runs", i)
		}
	}
}

func TestCarrierDominates(t *testing.T) {
	tn := NewTone()
	tn.SampleRate = 8192
	tn.Duration = 1.0

	buf := tn.Synthesize()
	spectrum := fft.FFTReal(buf)

	// one bin per hertz at this rate and duration
	best, bestMag := 0, 0.0
	for i := 1; i < len(spectrum)/2; i++ {
		if m := cmplx.Abs(spectrum[i]); m > bestMag {
			best, bestMag = i, m
		}
	}
	if best < 962 || best > 964 {
		t.Fatalf("dominant bin %d, expected the 963Hz carrier", best)
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	tn := NewTone()
	tn.Duration = 0

	if buf := tn.Synthesize(); buf != nil {
		t.Fatalf("expected nil for zero duration, got %d samples", len(buf))
	}
	if err := tn.ToToneWav("unused.wav"); err != ErrEmptyTone {
		t.Fatalf("expected ErrEmptyTone, got %v", err)
	}
}
