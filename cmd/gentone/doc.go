// Command gentone generates the golden-ratio modulated harmonic tone.
//
// This tool synthesizes a 963 Hz carrier amplitude-modulated by a sub-carrier
// at carrier/φ, mixed with 432 Hz and 528 Hz harmonics, peak-normalized and
// written as a 16-bit PCM mono WAV file.
//
// Usage:
//
//	gentone <output_wav> [duration_seconds]
//
// Optional duration parameter (default: 60 seconds) at 44100 Hz.
package main
