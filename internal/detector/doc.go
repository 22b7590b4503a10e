// Package detector adapts heterogeneous text detectors to one raw-box
// producer contract.
//
// Three families feed the pipeline:
//
//   - Primary OCR: Tesseract (via gosseract), run over every preprocessing
//     variant in two scan modes ("single block" and "sparse text").
//   - Secondary OCR: AWS Textract, optional. Availability is resolved once at
//     startup; when absent or failing it contributes nothing.
//   - Contour: a purely geometric detector that boxes connected ink blobs.
//
// Every adapter returns plain region.Box values. Duplicates and heavy overlap
// across adapters are expected; reconciling them is the aggregator's job, not
// the adapters'.
package detector
