package detector

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/textract"

	"github.com/ironsheep/scan-redact/internal/region"
)

func wordBlock(points ...[2]float64) *textract.Block {
	polygon := make([]*textract.Point, 0, len(points))
	for _, p := range points {
		polygon = append(polygon, &textract.Point{X: aws.Float64(p[0]), Y: aws.Float64(p[1])})
	}
	return &textract.Block{
		BlockType: aws.String(textract.BlockTypeWord),
		Geometry:  &textract.Geometry{Polygon: polygon},
	}
}

func TestWordBoxes_PolygonToPixels(t *testing.T) {
	// An axis-aligned word polygon on a 200x80 page.
	blocks := []*textract.Block{
		wordBlock([2]float64{0.1, 0.125}, [2]float64{0.5, 0.125}, [2]float64{0.5, 0.25}, [2]float64{0.1, 0.25}),
	}

	got := wordBoxes(blocks, 200, 80)

	want := []region.Box{{X: 20, Y: 10, W: 80, H: 10}}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Got %+v, want %+v", got, want)
	}
}

func TestWordBoxes_SkewedPolygonEnvelope(t *testing.T) {
	// A tilted word: the box is the min/max envelope of all four corners.
	blocks := []*textract.Block{
		wordBlock([2]float64{0.10, 0.12}, [2]float64{0.50, 0.10}, [2]float64{0.51, 0.20}, [2]float64{0.11, 0.22}),
	}

	got := wordBoxes(blocks, 100, 100)

	// Corners round to (10,12), (50,10), (51,20), (11,22).
	want := region.Box{X: 10, Y: 10, W: 41, H: 12}
	if len(got) != 1 || got[0] != want {
		t.Errorf("Got %+v, want %+v", got, want)
	}
}

func TestWordBoxes_Rounding(t *testing.T) {
	// 0.333*100+0.5 = 33.8 truncates to 33; 0.336*100+0.5 = 34.1 to 34.
	blocks := []*textract.Block{
		wordBlock([2]float64{0.333, 0.0}, [2]float64{0.336, 0.0}, [2]float64{0.336, 0.1}, [2]float64{0.333, 0.1}),
	}

	got := wordBoxes(blocks, 100, 100)

	want := region.Box{X: 33, Y: 0, W: 1, H: 10}
	if len(got) != 1 || got[0] != want {
		t.Errorf("Got %+v, want %+v", got, want)
	}
}

func TestWordBoxes_SkipsNonWordBlocks(t *testing.T) {
	line := wordBlock([2]float64{0.0, 0.0}, [2]float64{1.0, 0.0}, [2]float64{1.0, 0.1}, [2]float64{0.0, 0.1})
	line.BlockType = aws.String(textract.BlockTypeLine)
	page := &textract.Block{BlockType: aws.String(textract.BlockTypePage)}
	noGeometry := &textract.Block{BlockType: aws.String(textract.BlockTypeWord)}
	emptyPolygon := &textract.Block{
		BlockType: aws.String(textract.BlockTypeWord),
		Geometry:  &textract.Geometry{},
	}
	word := wordBlock([2]float64{0.2, 0.2}, [2]float64{0.4, 0.2}, [2]float64{0.4, 0.3}, [2]float64{0.2, 0.3})

	got := wordBoxes([]*textract.Block{line, page, noGeometry, emptyPolygon, word}, 100, 100)

	want := region.Box{X: 20, Y: 20, W: 20, H: 10}
	if len(got) != 1 || got[0] != want {
		t.Errorf("Expected only the word block converted, got %+v", got)
	}
}

func TestWordBoxes_Empty(t *testing.T) {
	if got := wordBoxes(nil, 100, 100); len(got) != 0 {
		t.Errorf("Expected no boxes for no blocks, got %+v", got)
	}
}
