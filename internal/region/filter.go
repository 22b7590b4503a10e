package region

// FilterParams holds the size and shape bounds used to discard implausible
// regions after merging.
//
// Aspect bounds are exclusive: a region survives only when
// MinAspect < aspect < MaxAspect. A region with zero height has aspect 0 and
// is therefore always dropped by the MinAspect bound.
type FilterParams struct {
	// MinArea is the smallest region area, in square pixels, worth keeping.
	MinArea int

	// MaxAreaRatio caps region area as a fraction of the image area.
	MaxAreaRatio float64

	// MinAspect drops extremely tall, narrow regions (aspect <= MinAspect).
	MinAspect float64

	// MaxAspect drops extremely wide, flat regions (aspect >= MaxAspect).
	MaxAspect float64
}

// DefaultFilterParams returns the bounds used by the full multi-detector
// pipeline.
func DefaultFilterParams() FilterParams {
	return FilterParams{
		MinArea:      50,
		MaxAreaRatio: 0.5,
		MinAspect:    0.1,
		MaxAspect:    15,
	}
}

// ContourFilterParams returns the bounds used when only the geometric contour
// detector feeds the pipeline. The wide-aspect bound is tighter because
// contour boxes skew wider than OCR word boxes.
func ContourFilterParams() FilterParams {
	p := DefaultFilterParams()
	p.MaxAspect = 10
	return p
}

// Filter drops regions that are implausible as text: too small, larger than
// MaxAreaRatio of the image, or with an extreme aspect ratio. The relative
// order of surviving boxes is preserved.
func Filter(boxes []Box, imageWidth, imageHeight int, p FilterParams) []Box {
	maxArea := float64(imageWidth) * float64(imageHeight) * p.MaxAreaRatio

	kept := make([]Box, 0, len(boxes))
	for _, b := range boxes {
		area := b.Area()
		if area < p.MinArea {
			continue
		}
		if float64(area) > maxArea {
			continue
		}
		aspect := b.AspectRatio()
		if aspect <= p.MinAspect || aspect >= p.MaxAspect {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}
