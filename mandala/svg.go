package mandala

import "fmt"
import "math"
import "strings"

func renderSVG(coords [][2]float64, symbols []string, palette []string, size int) string {
	var parts []string
	parts = append(parts,
		fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, size, size),
		fmt.Sprintf(`<rect width="%d" height="%d" fill="#000011"/>`, size, size),
	)

	center := float64(size) / 2

	for i := 0; i < 5; i++ {
		radius := float64(size) * 0.1 * math.Pow(GoldenRatio, float64(i))
		parts = append(parts, fmt.Sprintf(
			`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="1" opacity="0.3"/>`,
			center, center, radius, palette[i%len(palette)],
		))
	}

	fontSize := size / 20
	if fontSize < 20 {
		fontSize = 20
	}
	for i, coord := range coords {
		parts = append(parts, fmt.Sprintf(
			`<text x="%.2f" y="%.2f" font-family="serif" font-size="%d" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`,
			coord[0], coord[1], fontSize, palette[i%len(palette)], symbols[i],
		))
	}

	for i := 0; i < len(coords); i++ {
		for j := i + 1; j < len(coords); j++ {
			parts = append(parts, fmt.Sprintf(
				`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.5" opacity="0.2"/>`,
				coords[i][0], coords[i][1], coords[j][0], coords[j][1],
				palette[(i+j)%len(palette)],
			))
		}
	}

	parts = append(parts, `</svg>`)
	return strings.Join(parts, "\n")
}
