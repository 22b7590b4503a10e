// Package preprocess derives the alternate rasters the OCR detector scans.
//
// A single scanned page is rendered five ways before detection: grayscale,
// global Otsu threshold, adaptive mean threshold, a dilated Canny edge map,
// and a morphological opening of the Otsu result. Faint or low-contrast text
// that one rendition loses is often recovered by another; the pipeline scans
// all of them and reconciles the detections afterwards.
//
// All functions here are pure transforms of their input image. Variant order
// is fixed and is part of the pipeline's concatenation contract.
package preprocess
