package preprocess

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// CannyEdges performs Canny edge detection on a grayscale image and returns a
// binary raster with edges in white.
//
// The stages are the standard ones: Gaussian blur to suppress noise, Sobel
// gradients, non-maximum suppression to thin edges to one pixel, then
// hysteresis thresholding. Pixels with gradient magnitude above thresholdHigh
// are strong edges and always kept; pixels between the thresholds survive only
// when touching a strong edge.
func CannyEdges(gray *image.Gray, thresholdLow, thresholdHigh int) *image.Gray {
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	out := image.NewGray(bounds)
	if width < 3 || height < 3 {
		return out
	}

	blurred := blur.Gaussian(gray, 1.4)

	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	at := func(x, y int) float64 {
		x = clampInt(x, 0, width-1)
		y = clampInt(y, 0, height-1)
		r, _, _, _ := blurred.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
		return float64(r >> 8)
	}

	magnitude := make([][]float64, height)
	direction := make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := at(x+kx, y+ky)
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression: keep only local maxima along the gradient.
	suppressed := make([][]float64, height)
	for y := 0; y < height; y++ {
		suppressed[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				continue
			}

			angle := direction[y][x]
			mag := magnitude[y][x]

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1, n2 = magnitude[y][x-1], magnitude[y][x+1]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1, n2 = magnitude[y-1][x+1], magnitude[y+1][x-1]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1, n2 = magnitude[y-1][x], magnitude[y+1][x]
			default:
				n1, n2 = magnitude[y-1][x-1], magnitude[y+1][x+1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[y][x] = mag
			}
		}
	}

	low := float64(thresholdLow)
	high := float64(thresholdHigh)

	strongNeighbor := func(x, y int) bool {
		for ky := -1; ky <= 1; ky++ {
			for kx := -1; kx <= 1; kx++ {
				py := clampInt(y+ky, 0, height-1)
				px := clampInt(x+kx, 0, width-1)
				if suppressed[py][px] >= high {
					return true
				}
			}
		}
		return false
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := suppressed[y][x]
			if v >= high || (v >= low && strongNeighbor(x, y)) {
				out.SetGray(x+bounds.Min.X, y+bounds.Min.Y, grayColor(255))
			}
		}
	}

	return out
}
