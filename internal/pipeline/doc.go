// Package pipeline orchestrates detection: it enumerates the detector work
// items, concatenates their raw boxes in a fixed order, and drives the
// aggregation and filtering core.
//
// Ordering is a contract, not an accident. The aggregator's greedy merge
// depends on its input order, so the pipeline always concatenates primary OCR
// results (preprocessing-variant order, block mode before sparse mode), then
// secondary-engine results, then contour results. Keeping the "variant x
// mode" nesting as a flat, pre-built work-item list makes that order explicit
// and testable.
//
// Failure policy: primary OCR and contour errors are fatal and propagate; a
// missing or failing secondary engine is logged and contributes nothing.
package pipeline
