package render

import "image"
import "image/color"
import "image/png"
import "os"

var backgroundColor = color.RGBA{R: 0, G: 0, B: 17, A: 255}
var traceColor = color.RGBA{R: 64, G: 224, B: 160, A: 255}

func newCanvas(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, backgroundColor)
		}
	}
	return img
}

func drawVLine(img *image.RGBA, x, y0, y1 int, col color.RGBA) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	bounds := img.Bounds()
	for y := y0; y <= y1; y++ {
		if y >= bounds.Min.Y && y < bounds.Max.Y {
			img.SetRGBA(x, y, col)
		}
	}
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
