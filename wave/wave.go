package wave

import "errors"

// ErrFileNotLoaded is returned when an audio file cannot be decoded.
var ErrFileNotLoaded = errors.New("audioNotLoaded")

// LoadWav loads mono wav file to sample vector
func LoadWav(inputFile string) []float64 {
	mono, _ := loadwav(inputFile)
	return mono
}

// LoadWavSampleRate loads mono wav file to sample vector and it's sample rate, or it returns an error like ErrFileNotLoaded
func LoadWavSampleRate(inputFile string) ([]float64, uint32, error) {
	mono, sr := loadwav(inputFile)
	if len(mono) == 0 || sr == 0 {
		return nil, 0, ErrFileNotLoaded
	}
	return mono, uint32(sr), nil
}

// LoadFlac loads mono flac file to sample vector
func LoadFlac(inputFile string) []float64 {
	mono, _ := loadflac(inputFile)
	return mono
}

// LoadFlacSampleRate loads mono flac file to sample vector and it's sample rate, or it returns an error like ErrFileNotLoaded
func LoadFlacSampleRate(inputFile string) ([]float64, uint32, error) {
	mono, sr := loadflac(inputFile)
	if len(mono) == 0 || sr == 0 {
		return nil, 0, ErrFileNotLoaded
	}
	return mono, uint32(sr), nil
}

// SaveWav saves mono wav file from sample vector
func SaveWav(outputFile string, vec []float64, sr int) error {
	return dumpwav(outputFile, vec, sr)
}

// Pad pads the sample vector symmetrically so its length becomes a
// multiple of window, plus half a window of leading and trailing silence.
func Pad(buf []float64, window int) []float64 {
	return pad(buf, window)
}
