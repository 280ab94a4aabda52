// Package raster clusters the children of an "op raster" into spatially
// coherent sub-ops, so an image spanning disjoint regions of the bed is
// scanned as several independent, tightly-bounded passes rather than one
// pass whose bounding box spans (and wastes travel across) empty space.
package raster
