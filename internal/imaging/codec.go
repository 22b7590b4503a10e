package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// ErrLoad reports an unreadable or undecodable input image. A load failure is
// fatal to the pipeline: there is nothing to detect.
var ErrLoad = errors.New("failed to load image")

// ErrSave reports that an output raster could not be written. Save failures
// are reported to the caller but do not invalidate detection results.
var ErrSave = errors.New("failed to save image")

// Load decodes the image at path. Supported formats are those of the imaging
// library: PNG, JPEG, GIF, TIFF and BMP. EXIF orientation is applied.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	return img, nil
}

// Save encodes img to path, with the format inferred from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSave, path, err)
	}
	return nil
}

// Info describes an image file without its pixels.
type Info struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// Stat reads just enough of the file at path to report its dimensions and
// format. The format name comes from the registered decoder, e.g. "png" or
// "jpeg". Failures wrap ErrLoad.
func Stat(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	return Info{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
