package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aenoth/resonance/tone"
)

func main() {
	// Check if the filename argument is provided
	if len(os.Args) < 2 {
		fmt.Println("Usage: gentone <output_wav> [duration_seconds]")
		os.Exit(1)
	}

	var filename = os.Args[1]

	// Create a new instance of Tone
	var t = tone.NewTone()

	if len(os.Args) > 2 {
		duration, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil || duration <= 0 {
			fmt.Printf("Invalid duration: %v\n", os.Args[2])
			os.Exit(1)
		}
		t.Duration = duration
	}

	err := t.ToToneWav(filename)
	if err != nil {
		fmt.Printf("Error generating tone: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s: %gHz carrier, %gs at %dHz\n",
		filename, t.BaseFreq, t.Duration, t.SampleRate)
}
