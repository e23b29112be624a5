package render

import "errors"
import "math"
import "math/cmplx"

import "github.com/mjibson/go-dsp/fft"

// Render represents the configuration for generating signal plots.
type Render struct {
	Width    int
	Height   int
	YReverse bool

	// spectrogram analysis parameters
	Window  int
	Resolut int
}

// NewRender creates a new Render instance with default values.
func NewRender() *Render {
	return &Render{
		Width:   1200,
		Height:  600,
		Window:  256,
		Resolut: 2048,
	}
}

var ErrEmptySignal = errors.New("signalEmpty")

// Waveform plots the time-domain envelope of a sample vector and saves it
// as a PNG image. Each pixel column shows the min/max span of the samples
// it covers.
func (r *Render) Waveform(buf []float64, outputFile string) error {
	if len(buf) == 0 {
		return ErrEmptySignal
	}

	img := newCanvas(r.Width, r.Height)
	mid := float64(r.Height) / 2
	scale := mid * 0.95

	perCol := float64(len(buf)) / float64(r.Width)
	for x := 0; x < r.Width; x++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		start := int(float64(x) * perCol)
		end := int(float64(x+1) * perCol)
		if end <= start {
			end = start + 1
		}
		for i := start; i < end && i < len(buf); i++ {
			if buf[i] < lo {
				lo = buf[i]
			}
			if buf[i] > hi {
				hi = buf[i]
			}
		}
		if lo > hi {
			continue
		}
		drawVLine(img, x, int(mid-hi*scale), int(mid-lo*scale), traceColor)
	}

	return writePNG(outputFile, img)
}

// Spectrum plots the magnitude of the FFT half-spectrum and saves it as a
// PNG image.
func (r *Render) Spectrum(buf []float64, outputFile string) error {
	if len(buf) == 0 {
		return ErrEmptySignal
	}

	spectrum := fft.FFTReal(buf)
	half := len(spectrum) / 2
	if half == 0 {
		half = 1
	}

	mags := make([]float64, half)
	var peak float64
	for i := 0; i < half; i++ {
		mags[i] = 2.0 / float64(len(buf)) * cmplx.Abs(spectrum[i])
		if mags[i] > peak {
			peak = mags[i]
		}
	}
	if peak == 0 {
		peak = 1
	}

	img := newCanvas(r.Width, r.Height)
	perCol := float64(half) / float64(r.Width)
	for x := 0; x < r.Width; x++ {
		var top float64
		start := int(float64(x) * perCol)
		end := int(float64(x+1) * perCol)
		if end <= start {
			end = start + 1
		}
		for i := start; i < end && i < half; i++ {
			if mags[i] > top {
				top = mags[i]
			}
		}
		h := int(top / peak * float64(r.Height-1))
		drawVLine(img, x, r.Height-1-h, r.Height-1, traceColor)
	}

	return writePNG(outputFile, img)
}

// Phase plots the FFT phase angles over the half-spectrum and saves them
// as a PNG image. Phases span [-π, π] top to bottom.
func (r *Render) Phase(buf []float64, outputFile string) error {
	if len(buf) == 0 {
		return ErrEmptySignal
	}

	spectrum := fft.FFTReal(buf)
	half := len(spectrum) / 2
	if half == 0 {
		half = 1
	}

	img := newCanvas(r.Width, r.Height)
	perCol := float64(half) / float64(r.Width)
	for x := 0; x < r.Width; x++ {
		i := int(float64(x) * perCol)
		if i >= half {
			i = half - 1
		}
		phase := cmplx.Phase(spectrum[i])
		y := int((math.Pi - phase) / (2 * math.Pi) * float64(r.Height-1))
		drawVLine(img, x, y, y, traceColor)
	}

	return writePNG(outputFile, img)
}
