package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aenoth/resonance/mandala"
)

func main() {
	// Check if the arguments are provided
	if len(os.Args) < 3 {
		fmt.Println("Usage: mandala <frequency_hz> <output_svg> [size]")
		os.Exit(1)
	}

	freq, err := strconv.ParseFloat(os.Args[1], 64)
	if err != nil || freq <= 0 {
		fmt.Printf("Invalid frequency: %v\n", os.Args[1])
		os.Exit(1)
	}

	var filename = os.Args[2]

	size := 800
	if len(os.Args) > 3 {
		size, err = strconv.Atoi(os.Args[3])
		if err != nil || size <= 0 {
			fmt.Printf("Invalid size: %v\n", os.Args[3])
			os.Exit(1)
		}
	}

	m, err := mandala.Generate(freq, nil, size)
	if err != nil {
		fmt.Printf("Error generating mandala: %v\n", err)
		os.Exit(1)
	}

	if err := m.Save(filename); err != nil {
		fmt.Printf("Error saving mandala: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mandala %s saved to %s\n", m.ID, filename)
}
