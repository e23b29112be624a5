package render

import "image"
import "image/color"
import "math"

import "github.com/r9y9/gossp/stft"

import "github.com/aenoth/resonance/wave"

// Spectrogram renders an STFT magnitude spectrogram and saves it as a PNG
// image, one column per analysis frame and one row per frequency bin.
func (r *Render) Spectrogram(buf []float64, outputFile string) error {
	if len(buf) == 0 {
		return ErrEmptySignal
	}

	buf = wave.Pad(buf, r.Window)

	s := stft.New(r.Window, r.Resolut)
	spectrum := s.STFT(buf)

	bins := r.Resolut / 2
	frames := len(spectrum)
	if frames == 0 {
		return ErrEmptySignal
	}

	mags := make([][]float64, frames)
	mgcMin, mgcMax := math.Inf(1), math.Inf(-1)
	for i := range spectrum {
		mags[i] = make([]float64, bins)
		for j := 0; j < bins; j++ {
			v := spectrum[i][j]
			m := math.Log(1e-5 + math.Sqrt(real(v)*real(v)+imag(v)*imag(v)))
			mags[i][j] = m
			if m > mgcMax {
				mgcMax = m
			}
			if m < mgcMin {
				mgcMin = m
			}
		}
	}
	if mgcMax == mgcMin {
		mgcMax = mgcMin + 1
	}

	img := image.NewRGBA(image.Rect(0, 0, frames, bins))
	for x := 0; x < frames; x++ {
		for y := 0; y < bins; y++ {
			val := (mags[x][y] - mgcMin) / (mgcMax - mgcMin)
			col := color.RGBA{
				R: uint8(255 * val),
				G: uint8(255 * val * val),
				B: uint8(64 + 191*val),
				A: 255,
			}
			if r.YReverse {
				img.SetRGBA(x, bins-y-1, col)
			} else {
				img.SetRGBA(x, y, col)
			}
		}
	}

	return writePNG(outputFile, img)
}
