package mandala

import "crypto/sha256"
import "encoding/hex"
import "errors"
import "fmt"
import "math"
import "os"
import "strings"
import "time"

// GoldenRatio drives both the spiral radius and the palette hue step.
const GoldenRatio = 1.618033988749

// Symbols is the default glyph set; Generate uses the first seven.
var Symbols = []string{"𓂀", "∞", "𖤓", "⟁", "🜂", "✶", "⚛︎", "🜁", "🜃", "🜄"}

var ErrNoSymbols = errors.New("noSymbols")

// Mandala is a rendered mandala artifact.
type Mandala struct {
	ID        string       `json:"mandala_id"`
	Frequency float64      `json:"frequency"`
	Symbols   []string     `json:"symbols"`
	Coords    [][2]float64 `json:"coordinates"`
	Palette   []string     `json:"palette"`
	SVG       string       `json:"-"`
	CreatedAt time.Time    `json:"created_at"`
}

// Generate renders a mandala for a frequency. A nil symbol slice selects
// the first seven default glyphs. Size is the SVG edge in pixels.
func Generate(freq float64, symbols []string, size int) (*Mandala, error) {
	if symbols == nil {
		symbols = Symbols[:7]
	}
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}

	coords := spiralCoords(freq, len(symbols), size)
	palette := paletteFor(freq)
	svg := renderSVG(coords, symbols, palette, size)

	sum := sha256.Sum256([]byte(svg))

	return &Mandala{
		ID:        hex.EncodeToString(sum[:])[:16],
		Frequency: freq,
		Symbols:   symbols,
		Coords:    coords,
		Palette:   palette,
		SVG:       svg,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Save writes the SVG with a metadata comment header.
func (m *Mandala) Save(outputFile string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<!-- mandala %s -->\n", m.ID)
	fmt.Fprintf(&b, "<!-- frequency: %gHz -->\n", m.Frequency)
	fmt.Fprintf(&b, "<!-- symbols: %s -->\n", strings.Join(m.Symbols, " "))
	fmt.Fprintf(&b, "<!-- created: %s -->\n", m.CreatedAt.Format(time.RFC3339))
	b.WriteString(m.SVG)
	return os.WriteFile(outputFile, []byte(b.String()), 0644)
}

// spiralCoords places n points on a golden-ratio spiral whose phase is
// shifted by freq/1000 radians.
func spiralCoords(freq float64, n, size int) [][2]float64 {
	center := float64(size) / 2
	base := float64(size) * 0.3

	coords := make([][2]float64, n)
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + freq/1000.0
		radius := base * math.Pow(GoldenRatio, float64(i)/float64(n))
		coords[i] = [2]float64{
			center + radius*math.Cos(angle),
			center + radius*math.Sin(angle),
		}
	}
	return coords
}

// paletteFor steps seven hues around the color wheel by φ/7, starting
// from the frequency folded into [0, 360).
func paletteFor(freq float64) []string {
	// math.Mod keeps the sign of freq, so fold negatives back into [0, 1)
	hueBase := math.Mod(freq, 360) / 360.0
	if hueBase < 0 {
		hueBase++
	}

	palette := make([]string, 7)
	for i := range palette {
		hue := math.Mod(hueBase+float64(i)*GoldenRatio/7, 1.0)
		r, g, b := hueRGB(hue)
		palette[i] = fmt.Sprintf("#%02x%02x%02x", int(r*255), int(g*255), int(b*255))
	}
	return palette
}

func hueRGB(hue float64) (r, g, b float64) {
	switch {
	case hue < 1.0/6:
		return 1, hue * 6, 0
	case hue < 2.0/6:
		return 2 - hue*6, 1, 0
	case hue < 3.0/6:
		return 0, 1, hue*6 - 2
	case hue < 4.0/6:
		return 0, 4 - hue*6, 1
	case hue < 5.0/6:
		return hue*6 - 4, 0, 1
	default:
		return 1, 0, 6 - hue*6
	}
}
