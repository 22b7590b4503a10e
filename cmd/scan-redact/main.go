package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"

	"github.com/ironsheep/scan-redact/internal/detector"
	"github.com/ironsheep/scan-redact/internal/imaging"
	"github.com/ironsheep/scan-redact/internal/pipeline"
	"github.com/ironsheep/scan-redact/internal/region"
	"github.com/ironsheep/scan-redact/internal/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	parser := argparse.NewParser("scan-redact", "Detect and redact text regions in a scanned image")
	input := parser.String("i", "input", &argparse.Options{Help: "Input image path", Required: true})
	output := parser.String("o", "output", &argparse.Options{Help: "Output image path", Required: true})
	debug := parser.Flag("d", "debug", &argparse.Options{Help: "Write preprocessing variants and an annotated overlay under debug_images/"})
	threshold := parser.Float("t", "threshold", &argparse.Options{Help: "Pairwise overlap ratio above which candidate boxes merge", Default: region.DefaultOverlapThreshold})
	minConfidence := parser.Float("c", "min-confidence", &argparse.Options{Help: "Minimum OCR word confidence, 0-100", Default: 20.0})
	language := parser.String("l", "lang", &argparse.Options{Help: "Tesseract language code", Default: "eng"})
	regionJSON := parser.String("", "region-json", &argparse.Options{Help: "Also write the final region list as JSON to this path", Default: ""})
	noSecondary := parser.Flag("", "no-secondary", &argparse.Options{Help: "Skip the secondary OCR engine even when credentials are present"})
	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		return 1
	}

	logger, err := logs.NewLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}

	if info, err := imaging.Stat(*input); err == nil {
		logger.Infof("Input %s: %dx%d %s", *input, info.Width, info.Height, info.Format)
	}

	img, err := imaging.Load(*input)
	if err != nil {
		logger.Errorf("%v", err)
		return 1
	}

	// The secondary engine capability is resolved once, here, and handed to
	// the pipeline as an explicit value.
	var secondary detector.Detector
	if *noSecondary {
		logger.Infof("Secondary OCR engine disabled by flag")
	} else if eng, err := detector.NewTextractDetector(); err != nil {
		logger.Warnf("Secondary OCR engine disabled: %v", err)
	} else {
		secondary = eng
	}

	opts := pipeline.DefaultOptions()
	opts.OverlapThreshold = *threshold
	opts.MinConfidence = *minConfidence
	opts.Language = *language
	opts.Debug = *debug

	regions, err := pipeline.New(logger, secondary, opts).Detect(img)
	if err != nil {
		logger.Errorf("Detection failed: %v", err)
		return 1
	}

	status := 0
	redacted := render.Redact(img, regions)
	if err := imaging.Save(redacted, *output); err != nil {
		logger.Errorf("%v", err)
		status = 1
	}

	if *regionJSON != "" {
		if err := writeRegionJSON(*regionJSON, regions); err != nil {
			logger.Errorf("Failed to write region list: %v", err)
			status = 1
		}
	}

	fmt.Printf("Redacted %d regions\n", len(regions))
	return status
}

// writeRegionJSON persists the final region set as a flat list of rectangles.
func writeRegionJSON(path string, regions []region.Box) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(regions)
}
