package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// blankSampleSize is the side of the thumbnail inspected by IsBlank.
	blankSampleSize = 64

	// inkDistance is the minimum CIE-Lab distance from the background for a
	// pixel to count as ink. Black on white is roughly 1.0.
	inkDistance = 0.15

	// minInkRatio is the fraction of ink pixels below which an image is blank.
	minInkRatio = 0.002
)

// IsBlank reports whether img carries no visible marks.
//
// The image is reduced to a small thumbnail, the mean color is taken as the
// background, and every pixel noticeably far from it (in CIE-Lab space) counts
// as ink. Images with almost no ink, such as empty scans or solid-color
// placeholders, are blank and have nothing worth sending to OCR.
//
// Fully transparent pixels are ignored. An image with no opaque pixels is
// blank.
func IsBlank(img image.Image) bool {
	bounds := img.Bounds()
	if bounds.Empty() {
		return true
	}

	// Resize expects the origin at (0,0)
	if bounds.Min != (image.Point{}) {
		img = imaging.Clone(img)
	}

	w, h := blankSampleSize, blankSampleSize
	if bounds.Dx() < w {
		w = bounds.Dx()
	}
	if bounds.Dy() < h {
		h = bounds.Dy()
	}
	thumb := transform.Resize(img, w, h, transform.Linear)

	pixels := make([]colorful.Color, 0, w*h)
	var sum colorful.Color
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, ok := colorful.MakeColor(thumb.At(x, y))
			if !ok {
				continue
			}
			pixels = append(pixels, c)
			sum.R += c.R
			sum.G += c.G
			sum.B += c.B
		}
	}
	if len(pixels) == 0 {
		return true
	}

	n := float64(len(pixels))
	background := colorful.Color{R: sum.R / n, G: sum.G / n, B: sum.B / n}

	ink := 0
	for _, c := range pixels {
		if c.DistanceLab(background) > inkDistance {
			ink++
		}
	}
	return float64(ink)/n < minInkRatio
}
