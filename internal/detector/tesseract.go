package detector

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/scan-redact/internal/region"
)

// TesseractDetector is the primary OCR adapter. It runs Tesseract over a
// raster under a given scan mode and reports one raw box per recognized word.
//
// A word is kept only when its reported confidence exceeds MinConfidence and
// its text is non-blank after trimming whitespace. Tesseract reports
// confidence on a 0-100 scale; values at or below zero mean "no text".
type TesseractDetector struct {
	// Language is the Tesseract language code, e.g. "eng".
	Language string

	// MinConfidence is the exclusive lower bound on word confidence (0-100).
	// The full multi-engine pipeline uses 20; the simple pipeline uses 0.
	MinConfidence float64
}

// NewTesseractDetector returns a primary OCR adapter for the given language
// and confidence floor.
func NewTesseractDetector(language string, minConfidence float64) *TesseractDetector {
	return &TesseractDetector{Language: language, MinConfidence: minConfidence}
}

func (m ScanMode) pageSegMode() gosseract.PageSegMode {
	if m == ModeSparse {
		return gosseract.PSM_SPARSE_TEXT
	}
	return gosseract.PSM_SINGLE_BLOCK
}

// Detect runs Tesseract on the raster and returns the surviving word boxes.
// Tesseract needs a file path, so the raster is written to a temporary PNG
// for the duration of the call.
func (d *TesseractDetector) Detect(img image.Image, mode ScanMode) ([]region.Box, error) {
	path, err := writeTempPNG(img)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(d.Language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(mode.pageSegMode()); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	words, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed in %s mode: %w", mode, err)
	}
	return keepWords(words, d.MinConfidence), nil
}

// keepWords converts recognized words to raw boxes, dropping words at or below
// the confidence floor and words that are blank after trimming whitespace.
func keepWords(words []gosseract.BoundingBox, minConfidence float64) []region.Box {
	boxes := make([]region.Box, 0, len(words))
	for _, w := range words {
		if w.Confidence <= minConfidence {
			continue
		}
		if strings.TrimSpace(w.Word) == "" {
			continue
		}
		boxes = append(boxes, region.FromCorners(w.Box.Min.X, w.Box.Min.Y, w.Box.Max.X, w.Box.Max.Y))
	}
	return boxes
}
