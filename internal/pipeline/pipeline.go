package pipeline

import (
	"fmt"
	"image"

	"github.com/cyclopcam/logs"

	"github.com/ironsheep/scan-redact/internal/detector"
	"github.com/ironsheep/scan-redact/internal/preprocess"
	"github.com/ironsheep/scan-redact/internal/region"
	"github.com/ironsheep/scan-redact/internal/render"
)

// Options are the tunables of the detection pipeline. Zero values are not
// meaningful; start from DefaultOptions.
type Options struct {
	// OverlapThreshold is the pairwise overlap ratio above which raw boxes
	// merge into one region.
	OverlapThreshold float64

	// MinConfidence is the exclusive lower bound on primary OCR word
	// confidence, 0-100. The multi-engine pipeline uses 20; a single-detector
	// setup can lower this to 0.
	MinConfidence float64

	// Language is the Tesseract language code.
	Language string

	// Filter holds the size and aspect bounds for the false-positive filter.
	Filter region.FilterParams

	// Debug persists each preprocessing variant and one annotated overlay of
	// the final regions under DebugDir. It never changes detection results.
	Debug bool

	// DebugDir is where debug artifacts land when Debug is set.
	DebugDir string
}

// DefaultOptions returns the settings of the full multi-engine pipeline.
func DefaultOptions() Options {
	return Options{
		OverlapThreshold: region.DefaultOverlapThreshold,
		MinConfidence:    20,
		Language:         "eng",
		Filter:           region.DefaultFilterParams(),
		DebugDir:         "debug_images",
	}
}

// Pipeline drives the full detection sequence: preprocessing variants, the
// detector adapters in fixed order, then aggregation and filtering.
//
// The pipeline is strictly sequential. Detector outputs are concatenated in a
// fixed order before merging because the aggregator's result depends on input
// order; any future parallelization of the adapters must still concatenate in
// this order.
type Pipeline struct {
	log       logs.Log
	primary   detector.WordDetector
	secondary detector.Detector
	contour   detector.Detector
	opts      Options
}

// New builds a pipeline with the Tesseract primary adapter and the geometric
// contour detector. secondary is the optional second OCR engine; pass nil
// when the capability is absent and the pipeline will run without it.
func New(logger logs.Log, secondary detector.Detector, opts Options) *Pipeline {
	return &Pipeline{
		log:       logger,
		primary:   detector.NewTesseractDetector(opts.Language, opts.MinConfidence),
		secondary: secondary,
		contour:   detector.NewContourDetector(),
		opts:      opts,
	}
}

// workItem is one primary OCR invocation: a preprocessing variant scanned
// under one layout assumption.
type workItem struct {
	variant preprocess.Variant
	mode    detector.ScanMode
}

// workItems flattens the variant x scan-mode nesting into an explicit list.
// Order is the concatenation contract: variants in their fixed order, block
// mode before sparse mode within each variant.
func workItems(variants []preprocess.Variant) []workItem {
	items := make([]workItem, 0, len(variants)*2)
	for _, v := range variants {
		items = append(items, workItem{v, detector.ModeBlock}, workItem{v, detector.ModeSparse})
	}
	return items
}

// Detect runs the full pipeline over one image and returns the final region
// set. Primary OCR and contour failures are fatal; a missing or failing
// secondary engine degrades to an empty contribution.
func (p *Pipeline) Detect(img image.Image) ([]region.Box, error) {
	bounds := img.Bounds()
	variants := preprocess.Variants(img)

	raw, layers, err := p.collectRaw(img, variants)
	if err != nil {
		return nil, err
	}

	merged := region.Merge(raw, p.opts.OverlapThreshold)
	final := region.Filter(merged, bounds.Dx(), bounds.Dy(), p.opts.Filter)

	if p.opts.Debug {
		if err := p.writeDebugArtifacts(img, variants, layers, final); err != nil {
			p.log.Warnf("Failed to write debug artifacts: %v", err)
		}
	}

	p.log.Infof("Detection finished: %d raw, %d merged, %d final", len(raw), len(merged), len(final))
	return final, nil
}

// collectRaw invokes every detector and concatenates their boxes in the fixed
// pipeline order: primary OCR work items, then the secondary engine, then
// contours. The returned layers group the same boxes by source for the debug
// overlay.
func (p *Pipeline) collectRaw(img image.Image, variants []preprocess.Variant) ([]region.Box, []render.Layer, error) {
	primaryBoxes := make([]region.Box, 0)
	for _, item := range workItems(variants) {
		boxes, err := p.primary.Detect(item.variant.Image, item.mode)
		if err != nil {
			return nil, nil, fmt.Errorf("primary OCR on %q variant in %s mode: %w", item.variant.Name, item.mode, err)
		}
		primaryBoxes = append(primaryBoxes, boxes...)
	}

	secondaryBoxes := make([]region.Box, 0)
	if p.secondary == nil {
		p.log.Infof("Secondary OCR engine not available, skipping")
	} else if boxes, err := p.secondary.Detect(img); err != nil {
		p.log.Warnf("Secondary OCR engine failed, continuing without it: %v", err)
	} else {
		secondaryBoxes = boxes
	}

	contourBoxes, err := p.contour.Detect(img)
	if err != nil {
		return nil, nil, fmt.Errorf("contour detection: %w", err)
	}

	raw := make([]region.Box, 0, len(primaryBoxes)+len(secondaryBoxes)+len(contourBoxes))
	raw = append(raw, primaryBoxes...)
	raw = append(raw, secondaryBoxes...)
	raw = append(raw, contourBoxes...)

	layers := []render.Layer{
		{Source: string(detector.SourcePrimary), Boxes: primaryBoxes},
		{Source: string(detector.SourceSecondary), Boxes: secondaryBoxes},
		{Source: string(detector.SourceContour), Boxes: contourBoxes},
	}
	return raw, layers, nil
}
