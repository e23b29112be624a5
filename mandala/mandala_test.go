package mandala

import "os"
import "path/filepath"
import "strings"
import "testing"

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(963.0, nil, 800)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(963.0, nil, 800)
	if err != nil {
		t.Fatal(err)
	}
	if a.SVG != b.SVG {
		t.Fatal("same inputs produced different SVG")
	}
	if a.ID != b.ID {
		t.Fatal("same SVG produced different IDs")
	}

	c, err := Generate(432.0, nil, 800)
	if err != nil {
		t.Fatal(err)
	}
	if c.ID == a.ID {
		t.Fatal("different frequencies should produce different mandalas")
	}
}

func TestGenerateStructure(t *testing.T) {
	m, err := Generate(528.0, nil, 800)
	if err != nil {
		t.Fatal(err)
	}

	if len(m.Symbols) != 7 {
		t.Fatalf("default symbol count %d, want 7", len(m.Symbols))
	}
	if len(m.Coords) != 7 {
		t.Fatalf("coordinate count %d, want 7", len(m.Coords))
	}
	if len(m.Palette) != 7 {
		t.Fatalf("palette size %d, want 7", len(m.Palette))
	}
	for _, c := range m.Palette {
		if len(c) != 7 || c[0] != '#' {
			t.Fatalf("bad palette color %q", c)
		}
	}

	if n := strings.Count(m.SVG, "<circle"); n != 5 {
		t.Fatalf("circle count %d, want 5", n)
	}
	if n := strings.Count(m.SVG, "<text"); n != 7 {
		t.Fatalf("text count %d, want 7", n)
	}
	// full mesh between 7 points
	if n := strings.Count(m.SVG, "<line"); n != 21 {
		t.Fatalf("line count %d, want 21", n)
	}
}

func TestGenerateNegativeFrequency(t *testing.T) {
	m, err := Generate(-963.0, nil, 800)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range m.Palette {
		if len(c) != 7 || c[0] != '#' {
			t.Fatalf("bad palette color %q", c)
		}
		for _, d := range c[1:] {
			if !strings.ContainsRune("0123456789abcdef", d) {
				t.Fatalf("malformed hex color %q", c)
			}
		}
	}
}

func TestGenerateCustomSymbols(t *testing.T) {
	m, err := Generate(741.0, []string{"∞", "✶"}, 400)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Coords) != 2 {
		t.Fatalf("coordinate count %d, want 2", len(m.Coords))
	}
	if _, err := Generate(741.0, []string{}, 400); err != ErrNoSymbols {
		t.Fatalf("expected ErrNoSymbols, got %v", err)
	}
}

func TestSave(t *testing.T) {
	m, err := Generate(963.0, nil, 800)
	if err != nil {
		t.Fatal(err)
	}

	name := filepath.Join(t.TempDir(), "mandala.svg")
	if err := m.Save(name); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "<svg") || !strings.Contains(text, "</svg>") {
		t.Fatal("saved file is not an SVG document")
	}
	if !strings.Contains(text, m.ID) {
		t.Fatal("saved file missing mandala id comment")
	}
}
