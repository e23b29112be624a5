// Command mandala renders a frequency-derived mandala as an SVG file.
//
// This tool lays glyphs out on a golden-ratio spiral phased by the given
// frequency, colors them from a hue-wheel palette and writes a standalone
// SVG document. The same frequency and size always produce the same bytes.
//
// Usage:
//
//	mandala <frequency_hz> <output_svg> [size]
//
// Optional size parameter (default: 800 pixels).
package main
