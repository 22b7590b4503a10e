package detector

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/ironsheep/scan-redact/internal/region"
)

// Source identifies which detector family produced a raw box. Used for debug
// overlays and logging; the aggregation core itself is source-blind.
type Source string

const (
	SourcePrimary   Source = "ocr"
	SourceSecondary Source = "textract"
	SourceContour   Source = "contour"
)

// ScanMode is the page layout assumption handed to the primary OCR engine.
type ScanMode int

const (
	// ModeBlock assumes a single uniform block of text.
	ModeBlock ScanMode = iota
	// ModeSparse assumes sparse, scattered text.
	ModeSparse
)

func (m ScanMode) String() string {
	switch m {
	case ModeBlock:
		return "block"
	case ModeSparse:
		return "sparse"
	default:
		return fmt.Sprintf("ScanMode(%d)", int(m))
	}
}

// WordDetector produces raw boxes from a raster under a scan-mode assumption.
// Implemented by the primary OCR adapter.
type WordDetector interface {
	Detect(img image.Image, mode ScanMode) ([]region.Box, error)
}

// Detector produces raw boxes from a raster with no extra parameters.
// Implemented by the secondary OCR adapter and the contour detector.
type Detector interface {
	Detect(img image.Image) ([]region.Box, error)
}

// writeTempPNG saves an image to a temporary PNG file for engines that only
// accept file paths. The caller removes the file.
func writeTempPNG(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "scan-redact-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
