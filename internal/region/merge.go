package region

import "sort"

// DefaultOverlapThreshold is the merge threshold used by the full pipeline.
const DefaultOverlapThreshold = 0.3

// Merge consolidates overlapping boxes into larger regions in a single greedy
// left-to-right pass.
//
// Boxes are stable-sorted by X, then folded into a running accumulator: when
// the next box's overlap with the accumulator, measured as intersection area
// over the smaller of the two areas, exceeds overlapThreshold, the accumulator
// grows to the union of both; otherwise the accumulator is emitted and the next
// box becomes the new accumulator.
//
// Every input box is covered by some output box. The result is not a fixed
// point: the pass only compares boxes adjacent in x-sorted order, so feeding
// the output back through Merge can still reduce the count, and two boxes that
// would merge transitively may land in separate output regions when the scan
// order separates them. The relative order of boxes with equal X is whatever
// the caller supplied.
func Merge(boxes []Box, overlapThreshold float64) []Box {
	if len(boxes) == 0 {
		return []Box{}
	}

	sorted := make([]Box, len(boxes))
	copy(sorted, boxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	merged := make([]Box, 0, len(sorted))
	cur := sorted[0]

	for _, b := range sorted[1:] {
		overlap := overlapArea(cur, b)
		smaller := minInt(cur.Area(), b.Area())
		if overlap > 0 && smaller > 0 && float64(overlap)/float64(smaller) > overlapThreshold {
			cur = Union(cur, b)
		} else {
			merged = append(merged, cur)
			cur = b
		}
	}

	return append(merged, cur)
}
