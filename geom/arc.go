package geom

import "math"

// maxArcSweep bounds a single cubic-Bézier arc segment to a 30-degree
// sweep: wider arcs are decomposed into consecutive segments so the
// standard control-point formula stays within its accuracy envelope.
const maxArcSweep = math.Pi / 6

// CubicArc is one cubic-Bézier approximation segment of a circular arc.
type CubicArc struct {
	Start, C1, C2, End Point
}

// ArcToCubics decomposes a circular arc centered at center, from angle
// startAngle through sweep radians (signed; positive is counter-clockwise
// in the standard math convention) at radius r, into a sequence of cubic
// Bézier segments each spanning at most 30 degrees.
//
// Returns nil for a zero-sweep arc.
func ArcToCubics(center Point, r, startAngle, sweep float64) []CubicArc {
	if sweep == 0 {
		return nil
	}

	segCount := int(math.Ceil(math.Abs(sweep) / maxArcSweep))
	if segCount < 1 {
		segCount = 1
	}
	segSweep := sweep / float64(segCount)

	arcs := make([]CubicArc, 0, segCount)
	angle := startAngle
	for i := 0; i < segCount; i++ {
		arcs = append(arcs, arcSegmentToCubic(center, r, angle, segSweep))
		angle += segSweep
	}
	return arcs
}

// arcSegmentToCubic converts a single arc segment (|delta| <= maxArcSweep)
// to one cubic Bézier using the standard control-point formula:
//
//	alpha = sin(delta) * (sqrt(4 + 3*tan²(delta/2)) - 1) / 3
func arcSegmentToCubic(center Point, r, angle, delta float64) CubicArc {
	start := center.Polar(angle, r)
	end := center.Polar(angle+delta, r)

	t := math.Tan(delta / 2)
	alpha := math.Sin(delta) * (math.Sqrt(4+3*t*t) - 1) / 3

	startTangent := Point{X: -math.Sin(angle), Y: math.Cos(angle)}
	endTangent := Point{X: -math.Sin(angle + delta), Y: math.Cos(angle + delta)}

	c1 := start.Add(startTangent.Scale(alpha * r))
	c2 := end.Sub(endTangent.Scale(alpha * r))

	return CubicArc{Start: start, C1: c1, C2: c2, End: end}
}
