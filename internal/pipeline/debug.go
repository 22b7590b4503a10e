package pipeline

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/ironsheep/scan-redact/internal/imaging"
	"github.com/ironsheep/scan-redact/internal/preprocess"
	"github.com/ironsheep/scan-redact/internal/region"
	"github.com/ironsheep/scan-redact/internal/render"
)

// writeDebugArtifacts persists each preprocessing variant plus one annotated
// overlay of the raw and final regions. Purely a side channel: failures are
// logged by the caller and detection results are unaffected.
func (p *Pipeline) writeDebugArtifacts(img image.Image, variants []preprocess.Variant, layers []render.Layer, final []region.Box) error {
	if err := os.MkdirAll(p.opts.DebugDir, 0o755); err != nil {
		return fmt.Errorf("failed to create debug directory: %w", err)
	}

	for _, v := range variants {
		path := filepath.Join(p.opts.DebugDir, "variant_"+v.Name+".png")
		if err := imaging.Save(v.Image, path); err != nil {
			return err
		}
	}

	overlay := render.Overlay(img, layers, final)
	return imaging.Save(overlay, filepath.Join(p.opts.DebugDir, "detections.png"))
}
