package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aenoth/resonance/render"
	"github.com/aenoth/resonance/wave"
)

func main() {
	// Check if the filename argument is provided
	if len(os.Args) < 2 {
		fmt.Println("Usage: visualize <wav_filename>")
		os.Exit(1)
	}

	var filename = os.Args[1]

	buf, _, err := wave.LoadWavSampleRate(filename)
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", filename, err)
		os.Exit(1)
	}

	// Create a new instance of Render
	var r = render.NewRender()
	r.YReverse = true

	base := strings.TrimSuffix(filename, ".wav")
	outputs := []struct {
		name string
		plot func([]float64, string) error
	}{
		{base + "_waveform.png", r.Waveform},
		{base + "_spectrum.png", r.Spectrum},
		{base + "_phase.png", r.Phase},
		{base + "_spectrogram.png", r.Spectrogram},
	}

	for _, out := range outputs {
		if err := out.plot(buf, out.name); err != nil {
			fmt.Printf("Error rendering %s: %v\n", out.name, err)
			os.Exit(1)
		}
		fmt.Printf("Saved %s\n", out.name)
	}
}
