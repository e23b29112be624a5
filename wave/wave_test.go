package wave

import "math"
import "path/filepath"
import "testing"

func TestSaveLoadRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "tone.wav")

	vec := make([]float64, 4000)
	for i := range vec {
		vec[i] = 0.75 * math.Sin(2*math.Pi*440*float64(i)/8000)
	}

	if err := SaveWav(name, vec, 8000); err != nil {
		t.Fatal(err)
	}

	got, sr, err := LoadWavSampleRate(name)
	if err != nil {
		t.Fatal(err)
	}
	if sr != 8000 {
		t.Fatalf("sample rate %d, want 8000", sr)
	}
	if len(got) != len(vec) {
		t.Fatalf("loaded %d samples, want %d", len(got), len(vec))
	}
	for i := range vec {
		if math.Abs(got[i]-vec[i]) > 1e-3 {
			t.Fatalf("sample %d: wrote %v, read %v", i, vec[i], got[i])
		}
	}
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()

	if buf := LoadWav(filepath.Join(dir, "absent.wav")); buf != nil {
		t.Fatalf("expected nil for missing wav, got %d samples", len(buf))
	}
	if _, _, err := LoadWavSampleRate(filepath.Join(dir, "absent.wav")); err != ErrFileNotLoaded {
		t.Fatalf("expected ErrFileNotLoaded, got %v", err)
	}
	if _, _, err := LoadFlacSampleRate(filepath.Join(dir, "absent.flac")); err != ErrFileNotLoaded {
		t.Fatalf("expected ErrFileNotLoaded, got %v", err)
	}
}

func TestPad(t *testing.T) {
	buf := Pad(make([]float64, 1000), 256)
	if len(buf)%256 != 0 {
		t.Fatalf("padded length %d not a multiple of 256", len(buf))
	}
	if len(buf) < 1000 {
		t.Fatalf("padding shrank the buffer to %d", len(buf))
	}
}
