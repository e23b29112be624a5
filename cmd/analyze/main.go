package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aenoth/resonance/coherence"
)

func main() {
	// Check if the filename argument is provided
	if len(os.Args) < 2 {
		fmt.Println("Usage: analyze <wav_or_flac_filename> [node_name ...]")
		os.Exit(1)
	}

	var filename = os.Args[1]

	// Create a new instance of Analyzer
	var a = coherence.NewAnalyzer()
	a.Nodes = os.Args[2:]

	report, err := a.Activate(filename)
	if err != nil {
		fmt.Printf("Error analyzing %s: %v\n", filename, err)
		os.Exit(1)
	}

	outputFile := strings.TrimSuffix(strings.TrimSuffix(filename, ".wav"), ".flac") + ".report.json"
	if err := report.WriteJSON(outputFile); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Coherence:      %.4f\n", report.Coherence)
	fmt.Printf("Field strength: %.4f\n", report.FieldStrength)
	fmt.Printf("Nodes:          %d\n", len(report.Nodes))
	fmt.Printf("Report saved to %s\n", outputFile)
}
