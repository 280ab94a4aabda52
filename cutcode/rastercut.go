package cutcode

import (
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/plot"
)

// RasterSource abstracts the decoded pixel data a RasterCut scans. Image
// decoding itself is an external collaborator; this
// interface is the seam the planner consumes it through.
type RasterSource interface {
	Width() int
	Height() int
	// LaserOn reports whether the laser should fire while crossing pixel
	// (x, y), x in [0, Width), y in [0, Height).
	LaserOn(x, y int) bool
}

// RasterCut scans a bounded image in a boustrophedon (zig-zag) raster
// pattern at a fixed device-unit pixel Step. It travels as its bounding
// box: Start/End are the top-left/bottom-right corners (respecting
// Normal), not sampled from the image content.
type RasterCut struct {
	CutObjectBase
	Source RasterSource
	Step   int // device units per source pixel
}

// NewRasterCut constructs a RasterCut covering the bbox from origin to
// origin+(Width,Height)*step in device units.
func NewRasterCut(origin geom.Point, source RasterSource, step, passes int) *RasterCut {
	if step <= 0 {
		step = 1
	}
	end := geom.Pt(
		origin.X+float64(source.Width()*step),
		origin.Y+float64(source.Height()*step),
	)
	return &RasterCut{
		CutObjectBase: NewBase(origin, end, passes),
		Source:        source,
		Step:          step,
	}
}

func (c *RasterCut) Length() float64 {
	s, e := c.Start(), c.End()
	w := e.X - s.X
	h := e.Y - s.Y
	if w < 0 {
		w = -w
	}
	if h < 0 {
		h = -h
	}
	// Total scan travel: one pass per row plus the inter-row step.
	rows := 0.0
	if c.Step > 0 {
		rows = h / float64(c.Step)
	}
	return w*rows + h
}

// Generator walks the source boustrophedon: even rows left-to-right, odd
// rows right-to-left, each source pixel expanded to Step device units.
func (c *RasterCut) Generator() []plot.Step {
	if c.Source == nil {
		return nil
	}
	origin := c.Start()
	ox, oy := int(origin.X), int(origin.Y)
	w, h := c.Source.Width(), c.Source.Height()

	out := make([]plot.Step, 0, w*h)
	for y := 0; y < h; y++ {
		deviceY := oy + y*c.Step
		if y%2 == 0 {
			for x := 0; x < w; x++ {
				out = append(out, plot.Step{X: ox + x*c.Step, Y: deviceY, On: c.Source.LaserOn(x, y)})
			}
		} else {
			for x := w - 1; x >= 0; x-- {
				out = append(out, plot.Step{X: ox + x*c.Step, Y: deviceY, On: c.Source.LaserOn(x, y)})
			}
		}
	}
	return out
}

// Point interpolates linearly along the bbox diagonal; rasters are not
// sampled for containment (they are never closed paths).
func (c *RasterCut) Point(t float64) geom.Point {
	return c.Start().Lerp(c.End(), t)
}

func (c *RasterCut) Flat() []CutObject { return scalarFlat(c) }
func (c *RasterCut) Candidate() []CutObject { return scalarCandidate(c) }

// Bounds returns the raster's bounding box in device units, ignoring
// direction (always MinX<=MaxX, MinY<=MaxY).
func (c *RasterCut) Bounds() geom.BBox {
	s, e := c.Start(), c.End()
	b := geom.EmptyBBox()
	return b.UnionPoint(s).UnionPoint(e)
}
