package detector

import (
	"image"

	"github.com/ironsheep/scan-redact/internal/preprocess"
	"github.com/ironsheep/scan-redact/internal/region"
)

// ContourDetector finds text-like blobs geometrically, with no OCR engine:
// grayscale, inverse Otsu threshold so ink becomes foreground, connected
// foreground components, one bounding box per component.
//
// Its own plausibility bounds are looser than the pipeline filter's: they
// only discard blobs that could not possibly be a word or line fragment.
type ContourDetector struct {
	// MinArea is the exclusive lower bound on bounding-box area.
	MinArea int

	// MinAspect and MaxAspect bound the box aspect ratio (both exclusive).
	MinAspect float64
	MaxAspect float64
}

// NewContourDetector returns a contour detector with the scanned-document
// defaults: area above 100 and aspect ratio strictly between 0.1 and 10.
func NewContourDetector() *ContourDetector {
	return &ContourDetector{MinArea: 100, MinAspect: 0.1, MaxAspect: 10}
}

// Detect returns one box per plausible foreground component of the image.
func (d *ContourDetector) Detect(img image.Image) ([]region.Box, error) {
	gray := preprocess.Grayscale(img)
	level := preprocess.OtsuLevel(gray)
	binary := preprocess.InverseThreshold(gray, level)

	bounds := binary.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	foreground := make([][]bool, height)
	for y := 0; y < height; y++ {
		foreground[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			foreground[y][x] = binary.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y > 0
		}
	}

	contours := findContours(foreground, width, height)

	boxes := make([]region.Box, 0, len(contours))
	for _, contour := range contours {
		box := region.FromPolygon(contour)
		// A contour is a filled pixel set; +1 makes the box cover the
		// rightmost and bottommost pixels.
		box.W++
		box.H++
		if box.Area() <= d.MinArea {
			continue
		}
		aspect := box.AspectRatio()
		if aspect <= d.MinAspect || aspect >= d.MaxAspect {
			continue
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}

// findContours groups connected foreground pixels into components using
// 8-connectivity. Components smaller than 10 pixels are discarded as noise.
func findContours(foreground [][]bool, width, height int) [][]region.Point {
	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	contours := make([][]region.Point, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if foreground[y][x] && !visited[y][x] {
				contour := floodFill(foreground, visited, x, y, width, height)
				if len(contour) >= 10 {
					contours = append(contours, contour)
				}
			}
		}
	}
	return contours
}

// floodFill collects the connected component containing the start pixel.
// Iterative with an explicit stack to avoid overflowing on large blobs.
func floodFill(foreground, visited [][]bool, startX, startY, width, height int) []region.Point {
	component := make([]region.Point, 0)
	stack := []region.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !foreground[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		component = append(component, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, region.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return component
}
