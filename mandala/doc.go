// Package mandala provides deterministic SVG mandala generation.
//
// This package lays glyphs out on a golden-ratio spiral whose phase is
// derived from a frequency, colors them from a palette stepped around the
// hue wheel, and renders the result as a standalone SVG document. The same
// frequency, glyph set and size always produce the same bytes, and the
// mandala identifier is the content address of the rendered SVG.
package mandala
