package detector

import (
	"image"
	"testing"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/scan-redact/internal/region"
)

func word(text string, confidence float64, x1, y1, x2, y2 int) gosseract.BoundingBox {
	return gosseract.BoundingBox{
		Box:        image.Rect(x1, y1, x2, y2),
		Word:       text,
		Confidence: confidence,
	}
}

func TestKeepWords(t *testing.T) {
	tests := []struct {
		name          string
		words         []gosseract.BoundingBox
		minConfidence float64
		want          []region.Box
	}{
		{
			name:          "confident word kept",
			words:         []gosseract.BoundingBox{word("hello", 90, 10, 10, 60, 30)},
			minConfidence: 20,
			want:          []region.Box{{X: 10, Y: 10, W: 50, H: 20}},
		},
		{
			name:          "confidence equal to floor dropped",
			words:         []gosseract.BoundingBox{word("hello", 20, 10, 10, 60, 30)},
			minConfidence: 20,
			want:          []region.Box{},
		},
		{
			name:          "confidence just above floor kept",
			words:         []gosseract.BoundingBox{word("hello", 20.1, 10, 10, 60, 30)},
			minConfidence: 20,
			want:          []region.Box{{X: 10, Y: 10, W: 50, H: 20}},
		},
		{
			name:          "below floor dropped",
			words:         []gosseract.BoundingBox{word("hello", 5, 10, 10, 60, 30)},
			minConfidence: 20,
			want:          []region.Box{},
		},
		{
			name: "whitespace-only word dropped regardless of confidence",
			words: []gosseract.BoundingBox{
				word("  \t ", 99, 10, 10, 60, 30),
				word("", 99, 70, 10, 90, 30),
			},
			minConfidence: 20,
			want:          []region.Box{},
		},
		{
			name:          "zero floor keeps low-confidence words",
			words:         []gosseract.BoundingBox{word("faint", 0.5, 0, 0, 20, 10)},
			minConfidence: 0,
			want:          []region.Box{{X: 0, Y: 0, W: 20, H: 10}},
		},
		{
			name:          "zero confidence dropped even with zero floor",
			words:         []gosseract.BoundingBox{word("noise", 0, 0, 0, 20, 10)},
			minConfidence: 0,
			want:          []region.Box{},
		},
		{
			name: "mixed list preserves order of survivors",
			words: []gosseract.BoundingBox{
				word("first", 80, 10, 10, 40, 25),
				word(" ", 95, 45, 10, 60, 25),
				word("skip", 10, 65, 10, 90, 25),
				word("last", 50, 95, 10, 130, 25),
			},
			minConfidence: 20,
			want: []region.Box{
				{X: 10, Y: 10, W: 30, H: 15},
				{X: 95, Y: 10, W: 35, H: 15},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keepWords(tt.words, tt.minConfidence)
			if len(got) != len(tt.want) {
				t.Fatalf("Got %d boxes, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Box %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScanModePageSegMode(t *testing.T) {
	if got := ModeBlock.pageSegMode(); got != gosseract.PSM_SINGLE_BLOCK {
		t.Errorf("Block mode: got %v, want PSM_SINGLE_BLOCK", got)
	}
	if got := ModeSparse.pageSegMode(); got != gosseract.PSM_SPARSE_TEXT {
		t.Errorf("Sparse mode: got %v, want PSM_SPARSE_TEXT", got)
	}
}
