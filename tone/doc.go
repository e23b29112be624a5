// Package tone provides layered harmonic tone synthesis.
//
// This package generates the golden-ratio modulated reference tone: a
// carrier sine wave amplitude-modulated by a sub-carrier at carrier/φ,
// mixed with fixed Solfeggio harmonics and peak-normalized. It supports:
//   - Configurable carrier frequency, duration and sample rate
//   - Arbitrary additive harmonics with per-harmonic amplitude
//   - Direct export to 16-bit PCM mono WAV files
package tone
