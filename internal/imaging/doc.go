// Package imaging is the image codec boundary: loading source rasters and
// writing outputs, with the load/save error distinction the pipeline's exit
// behavior depends on.
package imaging
