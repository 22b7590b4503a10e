package detector

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/textract"

	"github.com/ironsheep/scan-redact/internal/region"
)

// ErrUnavailable reports that the secondary OCR engine cannot be used in this
// process, typically because no AWS credentials were resolved.
var ErrUnavailable = errors.New("secondary OCR engine unavailable")

// TextractDetector is the optional secondary OCR adapter, backed by AWS
// Textract. Textract reports each word as a 4-corner polygon in normalized
// page coordinates; Detect converts those to axis-aligned pixel boxes.
type TextractDetector struct {
	client *textract.Textract
}

// NewTextractDetector resolves the secondary engine capability once at
// startup. It returns ErrUnavailable (wrapped) when the AWS session or its
// credentials cannot be resolved; callers treat that as a missing capability,
// not a failure.
func NewTextractDetector() (*TextractDetector, error) {
	sess, err := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := sess.Config.Credentials.Get(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &TextractDetector{client: textract.New(sess)}, nil
}

// Detect runs one Textract invocation against the untouched original image
// and returns an axis-aligned box per detected word. Each polygon corner is
// scaled from normalized page coordinates into pixels, then the box is the
// min/max envelope of the corners.
func (d *TextractDetector) Detect(img image.Image) ([]region.Box, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image for textract: %w", err)
	}

	out, err := d.client.DetectDocumentText(&textract.DetectDocumentTextInput{
		Document: &textract.Document{Bytes: buf.Bytes()},
	})
	if err != nil {
		return nil, fmt.Errorf("textract invocation failed: %w", err)
	}

	bounds := img.Bounds()
	return wordBoxes(out.Blocks, bounds.Dx(), bounds.Dy()), nil
}

// wordBoxes converts Textract word blocks to pixel boxes for a width x height
// raster. Polygon corners are in normalized page coordinates, so each is
// scaled by the image dimension and rounded to the nearest pixel. Non-word
// blocks and blocks without polygon geometry are skipped.
func wordBoxes(blocks []*textract.Block, width, height int) []region.Box {
	w := float64(width)
	h := float64(height)

	boxes := make([]region.Box, 0, len(blocks))
	for _, block := range blocks {
		if aws.StringValue(block.BlockType) != textract.BlockTypeWord {
			continue
		}
		if block.Geometry == nil || len(block.Geometry.Polygon) == 0 {
			continue
		}
		corners := make([]region.Point, 0, len(block.Geometry.Polygon))
		for _, p := range block.Geometry.Polygon {
			corners = append(corners, region.Point{
				X: int(aws.Float64Value(p.X)*w + 0.5),
				Y: int(aws.Float64Value(p.Y)*h + 0.5),
			})
		}
		boxes = append(boxes, region.FromPolygon(corners))
	}
	return boxes
}
