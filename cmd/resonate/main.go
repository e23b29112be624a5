package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aenoth/resonance/archive"
	"github.com/aenoth/resonance/coherence"
	"github.com/aenoth/resonance/mandala"
	"github.com/aenoth/resonance/render"
	"github.com/aenoth/resonance/tone"
	"github.com/aenoth/resonance/wave"
)

func fail(step string, err error) {
	fmt.Printf("Error during %s: %v\n", step, err)
	os.Exit(1)
}

func main() {
	// Check if the output prefix argument is provided
	if len(os.Args) < 2 {
		fmt.Println("Usage: resonate <output_prefix> [node_name ...]")
		os.Exit(1)
	}

	var prefix = os.Args[1]
	wavFile := prefix + ".wav"

	// 1. Generate the harmonic tone
	t := tone.NewTone()
	if err := t.ToToneWav(wavFile); err != nil {
		fail("tone generation", err)
	}
	fmt.Printf("Generated %s\n", wavFile)

	// 2. Measure coherence and write the activation report
	a := coherence.NewAnalyzer()
	a.Nodes = os.Args[2:]
	report, err := a.Activate(wavFile)
	if err != nil {
		fail("coherence analysis", err)
	}
	if err := report.WriteJSON(prefix + ".report.json"); err != nil {
		fail("report output", err)
	}
	fmt.Printf("Coherence %.4f, field strength %.4f\n", report.Coherence, report.FieldStrength)

	// 3. Render visualization artifacts
	buf, _, err := wave.LoadWavSampleRate(wavFile)
	if err != nil {
		fail("wav load", err)
	}
	r := render.NewRender()
	r.YReverse = true
	for suffix, plot := range map[string]func([]float64, string) error{
		"_waveform.png":    r.Waveform,
		"_spectrum.png":    r.Spectrum,
		"_phase.png":       r.Phase,
		"_spectrogram.png": r.Spectrogram,
	} {
		if err := plot(buf, prefix+suffix); err != nil {
			fail("rendering", err)
		}
	}
	fmt.Println("Rendered waveform, spectrum, phase and spectrogram")

	// 4. Render the mandala for the carrier frequency
	m, err := mandala.Generate(t.BaseFreq, nil, 800)
	if err != nil {
		fail("mandala generation", err)
	}
	if err := m.Save(prefix + ".svg"); err != nil {
		fail("mandala output", err)
	}
	fmt.Printf("Mandala %s saved\n", m.ID)

	// 5. Enshrine the packed tone in the archive
	content := string(archive.PackSamples(buf))
	ark := archive.NewArchive("resonance")
	entry := ark.Put(content, "audio/f16", map[string]string{
		"source":      wavFile,
		"sample_rate": fmt.Sprint(t.SampleRate),
	}, time.Time{})

	store, err := archive.OpenStore(prefix + ".db")
	if err != nil {
		fail("archive open", err)
	}
	defer store.Close()
	if err := store.SaveEntry(entry, ark.Fragments(entry.ID)); err != nil {
		fail("archive save", err)
	}

	restored, err := ark.Reconstruct(entry.ID)
	if err != nil {
		fail("reconstruction check", err)
	}
	fmt.Printf("Enshrined entry %s (%d fragments, round-trip %v)\n",
		entry.ID, len(entry.FragmentIDs), restored == content)

	if nodes := strings.Join(report.Nodes, ", "); nodes != "" {
		fmt.Printf("Participating nodes: %s\n", nodes)
	}
}
