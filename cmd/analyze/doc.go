// Command analyze measures the FFT phase coherence of an audio file.
//
// This tool computes the phase-difference coherence score of a WAV or FLAC
// file, scales it into a field strength over the named nodes and writes a
// JSON activation report next to the input.
//
// Usage:
//
//	analyze <audio_file> [node_name ...]
//
// The report file will be named <audio_file>.report.json
//
// Supported input formats: .wav, .flac
package main
