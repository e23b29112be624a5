package tone

import "errors"
import "math"

import "github.com/aenoth/resonance/wave"

// GoldenRatio is the modulation ratio between the carrier and the
// sub-carrier.
const GoldenRatio = 1.61803398875

// Harmonic is a fixed sine component mixed into the synthesized tone.
type Harmonic struct {
	Freq float64
	Amp  float64
}

// Tone represents the configuration for generating the harmonic tone.
type Tone struct {
	SampleRate int
	Duration   float64

	// carrier
	BaseFreq float64
	BaseAmp  float64

	// amplitude modulation sub-carrier, BaseFreq/GoldenRatio by default
	ModFreq  float64
	ModAmp   float64
	ModDepth float64

	Harmonics []Harmonic
}

// NewTone creates a new Tone instance with default values.
func NewTone() *Tone {
	return &Tone{
		SampleRate: 44100,
		Duration:   60.0,
		BaseFreq:   963.0,
		BaseAmp:    0.5,
		ModFreq:    963.0 / GoldenRatio,
		ModAmp:     0.5,
		ModDepth:   0.3,
		Harmonics: []Harmonic{
			{Freq: 432.0, Amp: 0.2},
			{Freq: 528.0, Amp: 0.2},
		},
	}
}

var ErrEmptyTone = errors.New("toneEmpty")

// Synthesize generates the tone and returns the peak-normalized sample
// vector. The carrier is amplitude-modulated by the sub-carrier and the
// harmonics are added on top.
func (t *Tone) Synthesize() []float64 {
	n := int(math.Round(float64(t.SampleRate) * t.Duration))
	if n <= 0 {
		return nil
	}

	buf := make([]float64, n)
	for i := 0; i < n; i++ {
		at := float64(i) / float64(t.SampleRate)

		base := t.BaseAmp * math.Sin(2*math.Pi*t.BaseFreq*at)
		mod := t.ModAmp * math.Sin(2*math.Pi*t.ModFreq*at)

		sample := base * (1 + t.ModDepth*mod)
		for _, h := range t.Harmonics {
			sample += h.Amp * math.Sin(2*math.Pi*h.Freq*at)
		}
		buf[i] = sample
	}

	normalize(buf)
	return buf
}

// ToToneWav synthesizes the tone and saves it as a WAV file.
func (t *Tone) ToToneWav(outputFile string) error {
	buf := t.Synthesize()
	if len(buf) == 0 {
		return ErrEmptyTone
	}
	return wave.SaveWav(outputFile, buf, t.SampleRate)
}

func normalize(buf []float64) {
	var peak float64
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return
	}
	for i := range buf {
		buf[i] /= peak
	}
}
