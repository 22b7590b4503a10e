package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/scan-redact/internal/region"
)

// Redact returns a copy of img with every box painted over in opaque black.
// Boxes are clamped to the image bounds first; the input image is never
// modified. Fills are idempotent and opaque, so drawing order is irrelevant.
func Redact(img image.Image, boxes []region.Box) image.Image {
	dc := gg.NewContextForImage(img)
	w, h := dc.Width(), dc.Height()

	dc.SetColor(color.Black)
	for _, b := range boxes {
		c := clampBox(b, w, h)
		if c.W <= 0 || c.H <= 0 {
			continue
		}
		dc.DrawRectangle(float64(c.X), float64(c.Y), float64(c.W), float64(c.H))
	}
	dc.Fill()

	return dc.Image()
}

// Layer is one detector's raw boxes, drawn in its own color on the debug
// overlay so the sources can be told apart.
type Layer struct {
	Source string
	Boxes  []region.Box
}

// Overlay returns a copy of img annotated for debugging: each layer's raw
// boxes outlined in a distinct color, and the final region set outlined on
// top with a heavier green stroke.
func Overlay(img image.Image, layers []Layer, final []region.Box) image.Image {
	dc := gg.NewContextForImage(img)
	w, h := dc.Width(), dc.Height()

	palette := colorful.FastHappyPalette(len(layers))
	for i, layer := range layers {
		dc.SetColor(palette[i])
		dc.SetLineWidth(1)
		for _, b := range layer.Boxes {
			c := clampBox(b, w, h)
			if c.W <= 0 || c.H <= 0 {
				continue
			}
			dc.DrawRectangle(float64(c.X), float64(c.Y), float64(c.W), float64(c.H))
		}
		dc.Stroke()
	}

	dc.SetRGB(0, 0.8, 0)
	dc.SetLineWidth(3)
	for _, b := range final {
		c := clampBox(b, w, h)
		if c.W <= 0 || c.H <= 0 {
			continue
		}
		dc.DrawRectangle(float64(c.X), float64(c.Y), float64(c.W), float64(c.H))
	}
	dc.Stroke()

	return dc.Image()
}

func clampBox(b region.Box, width, height int) region.Box {
	x1 := clampInt(b.X, 0, width)
	y1 := clampInt(b.Y, 0, height)
	x2 := clampInt(b.Right(), 0, width)
	y2 := clampInt(b.Bottom(), 0, height)
	return region.FromCorners(x1, y1, x2, y2)
}

func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
