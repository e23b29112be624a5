// Package wave provides mono audio file input and output.
//
// This package loads WAV and FLAC files into float64 sample vectors and
// saves sample vectors as 16-bit PCM mono WAV files. It supports:
//   - Decoding WAV files (any channel count, first channel kept)
//   - Decoding FLAC files with arbitrary bit depth
//   - Reporting the source sample rate alongside the samples
//   - Padding sample vectors to a multiple of an analysis window
package wave
