// Command resonate runs the full pipeline end to end.
//
// This tool generates the harmonic tone, measures its phase coherence,
// renders the visualization plots and the carrier-frequency mandala, and
// enshrines the packed tone in a SQLite archive, verifying the round trip.
//
// Usage:
//
//	resonate <output_prefix> [node_name ...]
//
// All artifacts are written under the given prefix: .wav, .report.json,
// _waveform.png, _spectrum.png, _phase.png, _spectrogram.png, .svg and .db.
package main
