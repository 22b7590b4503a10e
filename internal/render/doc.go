// Package render paints final regions onto copies of the source image:
// opaque fills for redaction, colored outlines for debug overlays.
package render
