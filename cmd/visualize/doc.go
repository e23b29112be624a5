// Command visualize renders PNG plots from a WAV file.
//
// This tool draws the time-domain envelope, the FFT magnitude spectrum, the
// FFT phase angles and an STFT magnitude spectrogram of a WAV file, each
// saved as a separate PNG image.
//
// Usage:
//
//	visualize <wav_file>
//
// The output files will be named <wav_file minus .wav>_waveform.png,
// _spectrum.png, _phase.png and _spectrogram.png.
package main
