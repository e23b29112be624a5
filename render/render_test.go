package render

import "image/png"
import "math"
import "os"
import "path/filepath"
import "testing"

func testSignal(n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = math.Sin(2*math.Pi*963*float64(i)/8192) * 0.8
	}
	return buf
}

func decodePNG(t *testing.T, name string) (width, height int) {
	t.Helper()
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestWaveform(t *testing.T) {
	r := NewRender()
	name := filepath.Join(t.TempDir(), "waveform.png")

	if err := r.Waveform(testSignal(8192), name); err != nil {
		t.Fatal(err)
	}
	if w, h := decodePNG(t, name); w != r.Width || h != r.Height {
		t.Fatalf("image %dx%d, want %dx%d", w, h, r.Width, r.Height)
	}
}

func TestSpectrum(t *testing.T) {
	r := NewRender()
	name := filepath.Join(t.TempDir(), "spectrum.png")

	if err := r.Spectrum(testSignal(8192), name); err != nil {
		t.Fatal(err)
	}
	if w, h := decodePNG(t, name); w != r.Width || h != r.Height {
		t.Fatalf("image %dx%d, want %dx%d", w, h, r.Width, r.Height)
	}
}

func TestPhase(t *testing.T) {
	r := NewRender()
	name := filepath.Join(t.TempDir(), "phase.png")

	if err := r.Phase(testSignal(8192), name); err != nil {
		t.Fatal(err)
	}
	if w, h := decodePNG(t, name); w != r.Width || h != r.Height {
		t.Fatalf("image %dx%d, want %dx%d", w, h, r.Width, r.Height)
	}
}

func TestSpectrogram(t *testing.T) {
	r := NewRender()
	r.YReverse = true
	name := filepath.Join(t.TempDir(), "spectrogram.png")

	if err := r.Spectrogram(testSignal(16384), name); err != nil {
		t.Fatal(err)
	}
	w, h := decodePNG(t, name)
	if h != r.Resolut/2 {
		t.Fatalf("spectrogram height %d, want %d bins", h, r.Resolut/2)
	}
	if w < 1 {
		t.Fatalf("spectrogram width %d", w)
	}
}

func TestEmptySignal(t *testing.T) {
	r := NewRender()
	name := filepath.Join(t.TempDir(), "unused.png")

	if err := r.Waveform(nil, name); err != ErrEmptySignal {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
	if err := r.Spectrum(nil, name); err != ErrEmptySignal {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
	if err := r.Phase(nil, name); err != ErrEmptySignal {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
	if err := r.Spectrogram(nil, name); err != ErrEmptySignal {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
}
