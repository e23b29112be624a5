package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aenoth/resonance/archive"
	"github.com/aenoth/resonance/wave"
)

func main() {
	// Check if the arguments are provided
	if len(os.Args) < 4 {
		fmt.Println("Usage: restore <archive_db> <entry_id> <output_file>")
		os.Exit(1)
	}

	var dbFile = os.Args[1]
	var entryID = os.Args[2]
	var filename = os.Args[3]

	store, err := archive.OpenStore(dbFile)
	if err != nil {
		fmt.Printf("Error opening archive %s: %v\n", dbFile, err)
		os.Exit(1)
	}
	defer store.Close()

	entry, fragments, err := store.LoadEntry(entryID)
	if err != nil {
		fmt.Printf("Error loading entry %s: %v\n", entryID, err)
		os.Exit(1)
	}

	content, err := archive.Reconstruct(fragments, entry.ContentHash)
	if err != nil {
		fmt.Printf("Error reconstructing entry: %v\n", err)
		os.Exit(1)
	}

	if entry.ContentType == "audio/f16" {
		sr, err := strconv.Atoi(entry.Metadata["sample_rate"])
		if err != nil || sr <= 0 {
			sr = 44100
		}
		buf := archive.UnpackSamples([]byte(content))
		if err := wave.SaveWav(filename, buf, sr); err != nil {
			fmt.Printf("Error writing wav: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			fmt.Printf("Error writing file: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Restored %s from %d fragments to %s\n", entryID, len(fragments), filename)
}
