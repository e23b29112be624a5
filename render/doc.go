// Package render provides PNG visualization of audio signals.
//
// This package renders a sample vector as time-domain, frequency-domain
// and phase plots, and as an STFT magnitude spectrogram. It supports:
//   - Waveform plots with per-column min/max envelopes
//   - Magnitude spectrum and phase plots over the FFT half-spectrum
//   - Spectrogram images normalized to the observed magnitude range
//   - Optional vertical flipping of spectrogram images
package render
