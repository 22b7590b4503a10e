package preprocess

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// Variant is one preprocessing rendition of the source image, identified by a
// stable name used for debug artifacts and work-item ordering.
type Variant struct {
	Name  string
	Image image.Image
}

// Variant names, in pipeline order.
const (
	VariantGray     = "gray"
	VariantOtsu     = "otsu"
	VariantAdaptive = "adaptive"
	VariantEdges    = "edges"
	VariantOpened   = "opened"
)

// Adaptive threshold window parameters, matching the scanned-document defaults.
const (
	adaptiveBlockSize = 11
	adaptiveConstant  = 2
)

// Canny hysteresis thresholds for the edge variant.
const (
	cannyLow  = 50
	cannyHigh = 150
)

// Variants derives the fixed set of preprocessing renditions the OCR detector
// scans. The order is part of the pipeline contract: grayscale, global Otsu
// threshold, adaptive mean threshold, dilated Canny edge map, and a
// morphological opening of the Otsu result.
func Variants(img image.Image) []Variant {
	gray := Grayscale(img)
	level := OtsuLevel(gray)

	otsu := segment.Threshold(gray, level)
	adaptive := AdaptiveThreshold(gray, adaptiveBlockSize, adaptiveConstant)
	edges := effect.Dilate(CannyEdges(gray, cannyLow, cannyHigh), 1)
	opened := effect.Dilate(effect.Erode(otsu, 1), 1)

	return []Variant{
		{Name: VariantGray, Image: gray},
		{Name: VariantOtsu, Image: otsu},
		{Name: VariantAdaptive, Image: adaptive},
		{Name: VariantEdges, Image: edges},
		{Name: VariantOpened, Image: opened},
	}
}

// Grayscale converts an image to 8-bit grayscale using ITU-R BT.601 luminance
// weights (0.299*R + 0.587*G + 0.114*B).
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			v := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			gray.SetGray(x, y, grayColor(uint8(v)))
		}
	}
	return gray
}

// InverseThreshold binarizes a grayscale image with foreground below the
// level: dark ink on a light page comes out white. Used by the contour
// detector, which extracts connected foreground components.
func InverseThreshold(gray *image.Gray, level uint8) *image.Gray {
	return segment.Threshold(imaging.Invert(gray), 255-level)
}

// OtsuLevel computes a global binarization level by Otsu's method: the level
// maximizing between-class variance of the grayscale histogram.
func OtsuLevel(gray *image.Gray) uint8 {
	var hist [256]int
	bounds := gray.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 128
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[gray.GrayAt(x, y).Y]++
		}
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var sumBack, weightBack float64
	var bestLevel uint8
	var bestVariance float64

	for level := 0; level < 256; level++ {
		weightBack += float64(hist[level])
		if weightBack == 0 {
			continue
		}
		weightFore := float64(total) - weightBack
		if weightFore == 0 {
			break
		}
		sumBack += float64(level) * float64(hist[level])

		meanBack := sumBack / weightBack
		meanFore := (sum - sumBack) / weightFore
		variance := weightBack * weightFore * (meanBack - meanFore) * (meanBack - meanFore)

		if variance > bestVariance {
			bestVariance = variance
			bestLevel = uint8(level)
		}
	}

	return bestLevel
}

// AdaptiveThreshold binarizes a grayscale image against the local mean of a
// blockSize x blockSize window minus a constant. Pixels brighter than the
// local mean minus the constant come out white. Window means are computed
// with a summed-area table, so the cost is independent of blockSize.
func AdaptiveThreshold(gray *image.Gray, blockSize, constant int) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewGray(bounds)
	if w == 0 || h == 0 {
		return out
	}

	// integral[y][x] = sum of pixels in the rectangle (0,0)-(x,y) exclusive
	integral := make([][]int64, h+1)
	integral[0] = make([]int64, w+1)
	for y := 0; y < h; y++ {
		integral[y+1] = make([]int64, w+1)
		var rowSum int64
		for x := 0; x < w; x++ {
			rowSum += int64(gray.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
			integral[y+1][x+1] = integral[y][x+1] + rowSum
		}
	}

	half := blockSize / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x1 := clampInt(x-half, 0, w-1)
			y1 := clampInt(y-half, 0, h-1)
			x2 := clampInt(x+half, 0, w-1)
			y2 := clampInt(y+half, 0, h-1)

			count := int64(x2-x1+1) * int64(y2-y1+1)
			sum := integral[y2+1][x2+1] - integral[y1][x2+1] - integral[y2+1][x1] + integral[y1][x1]
			mean := float64(sum) / float64(count)

			v := float64(gray.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
			if v > mean-float64(constant) {
				out.SetGray(x+bounds.Min.X, y+bounds.Min.Y, grayColor(255))
			}
		}
	}

	return out
}

func grayColor(v uint8) color.Gray {
	return color.Gray{Y: v}
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
