// Package region provides the box aggregation and filtering core of the
// redaction pipeline.
//
// Detectors emit noisy, heavily overlapping candidate boxes. Merge consolidates
// them into a minimal region set with a single greedy scan, and Filter discards
// regions whose size or shape make them implausible as text.
//
// # Coordinate System
//
// All boxes use the standard image convention: origin (0, 0) at the top-left
// corner, X increasing rightward, Y increasing downward. A Box is stored as
// (x, y, w, h) with non-negative width and height.
//
// # Purity
//
// Merge and Filter are pure functions: they never modify their inputs, take no
// locks, and are safe to call concurrently on independent data.
package region
