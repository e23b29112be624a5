// Package coherence provides FFT phase coherence measurement.
//
// This package derives a scalar coherence score from the phase spectrum of
// an audio signal: the standard deviation of successive phase differences
// is mapped through 1/(1+σ), so a stable phase progression scores near one
// and noise scores near zero. It supports:
//   - Measuring coherence of raw sample vectors or WAV/FLAC files
//   - Golden-ratio field scaling across a set of named nodes
//   - JSON activation reports
//   - A frequency registry with pairwise harmonic resonance scoring
package coherence
