package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aenoth/resonance/archive"
	"github.com/aenoth/resonance/wave"
)

func main() {
	// Check if the arguments are provided
	if len(os.Args) < 3 {
		fmt.Println("Usage: enshrine <archive_db> <input_file>")
		os.Exit(1)
	}

	var dbFile = os.Args[1]
	var filename = os.Args[2]

	var content, contentType string
	metadata := map[string]string{"source": filename}

	if strings.HasSuffix(filename, ".wav") {
		buf, sr, err := wave.LoadWavSampleRate(filename)
		if err != nil {
			fmt.Printf("Error loading %s: %v\n", filename, err)
			os.Exit(1)
		}
		content = string(archive.PackSamples(buf))
		contentType = "audio/f16"
		metadata["sample_rate"] = strconv.Itoa(int(sr))
	} else {
		data, err := os.ReadFile(filename)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", filename, err)
			os.Exit(1)
		}
		content = string(data)
		contentType = "application/octet-stream"
	}

	a := archive.NewArchive("resonance")
	entry := a.Put(content, contentType, metadata, time.Time{})

	store, err := archive.OpenStore(dbFile)
	if err != nil {
		fmt.Printf("Error opening archive %s: %v\n", dbFile, err)
		os.Exit(1)
	}
	defer store.Close()

	fragments := a.Fragments(entry.ID)
	if err := store.SaveEntry(entry, fragments); err != nil {
		fmt.Printf("Error saving entry: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Enshrined %s\n", filename)
	fmt.Printf("Entry:     %s\n", entry.ID)
	fmt.Printf("Fragments: %d\n", len(fragments))

	status, err := store.Status()
	if err != nil {
		fmt.Printf("Error reading archive status: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Archive now holds %d entries in %d fragments\n", status.Entries, status.Fragments)
}
