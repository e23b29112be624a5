package coherence

import "encoding/json"
import "errors"
import "math"
import "math/cmplx"
import "os"
import "strings"

import "github.com/mjibson/go-dsp/fft"

import "github.com/aenoth/resonance/wave"

var ErrFileNotLoaded = errors.New("audioNotLoaded")

// Analyzer represents the configuration for measuring phase coherence.
type Analyzer struct {
	BaseFreq    float64
	GoldenRatio float64
	Nodes       []string

	// Field is the golden-ratio scaled coherence of the last Entangle call.
	Field float64
}

// NewAnalyzer creates a new Analyzer instance with default values.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		BaseFreq:    963.0,
		GoldenRatio: 1.61803398875,
	}
}

// Measure computes the phase coherence of a sample vector. The score is
// 1/(1+σ) where σ is the standard deviation of successive FFT phase
// differences, so it lies in (0, 1] for any non-empty signal.
func (a *Analyzer) Measure(buf []float64) float64 {
	if len(buf) < 2 {
		return 0.0
	}

	spectrum := fft.FFTReal(buf)

	phases := make([]float64, len(spectrum))
	for i, v := range spectrum {
		phases[i] = cmplx.Phase(v)
	}

	diffs := make([]float64, len(phases)-1)
	for i := 1; i < len(phases); i++ {
		diffs[i-1] = phases[i] - phases[i-1]
	}

	return 1.0 / (1.0 + stddev(diffs))
}

// Entangle measures the coherence of a sample vector and scales it by the
// golden ratio, storing the result as the analyzer's field value.
func (a *Analyzer) Entangle(buf []float64) float64 {
	a.Field = a.Measure(buf) * a.GoldenRatio
	return a.Field
}

// Report is the result of a field activation.
type Report struct {
	Coherence     float64  `json:"coherence"`
	FieldStrength float64  `json:"field_strength"`
	Nodes         []string `json:"nodes"`
	Frequency     float64  `json:"frequency"`
	SampleRate    uint32   `json:"sample_rate"`
	Samples       int      `json:"samples"`
}

// Activate loads a WAV or FLAC file, measures its coherence and returns
// the activation report. Field strength is the coherence scaled by the
// golden ratio and the node count.
func (a *Analyzer) Activate(inputFile string) (*Report, error) {
	var buf []float64
	var sr uint32
	var err error

	if strings.HasSuffix(inputFile, ".flac") {
		buf, sr, err = wave.LoadFlacSampleRate(inputFile)
	} else {
		buf, sr, err = wave.LoadWavSampleRate(inputFile)
	}
	if err != nil {
		return nil, ErrFileNotLoaded
	}

	coherence := a.Entangle(buf) / a.GoldenRatio

	return &Report{
		Coherence:     coherence,
		FieldStrength: coherence * float64(len(a.Nodes)) * a.GoldenRatio,
		Nodes:         a.Nodes,
		Frequency:     a.BaseFreq,
		SampleRate:    sr,
		Samples:       len(buf),
	}, nil
}

// WriteJSON saves the report as an indented JSON file.
func (r *Report) WriteJSON(outputFile string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputFile, append(data, '\n'), 0644)
}

func stddev(vec []float64) float64 {
	if len(vec) == 0 {
		return 0.0
	}
	var mean float64
	for _, v := range vec {
		mean += v
	}
	mean /= float64(len(vec))

	var variance float64
	for _, v := range vec {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(vec))

	return math.Sqrt(variance)
}
