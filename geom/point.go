package geom

import "math"

// Point is an (x, y) pair in scene or device coordinates, depending on the
// stage of the pipeline that produced it. Arithmetic is value-based: every
// method returns a new Point rather than mutating the receiver.
type Point struct {
	X float64
	Y float64
}

// Pt is a convenience constructor.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q componentwise.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q componentwise.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Lerp returns the point t of the way from p to q; t is not clamped.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared avoids the sqrt when only relative distance matters
// (nearest-neighbor scans compare this directly).
func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Chebyshev returns the L-infinity distance between p and q, used by the
// travel optimizer to cheaply lower-bound the Euclidean distance for early
// termination of a nearest-point scan.
func (p Point) Chebyshev(q Point) float64 {
	dx := math.Abs(p.X - q.X)
	dy := math.Abs(p.Y - q.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Angle returns the angle, in radians, of the vector from p to q.
func (p Point) Angle(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Polar returns the point at distance r and angle theta (radians) from p.
func (p Point) Polar(theta, r float64) Point {
	return Point{
		X: p.X + r*math.Cos(theta),
		Y: p.Y + r*math.Sin(theta),
	}
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Equal reports whether p and q are exactly equal (integer device-unit
// primitives round at construction, so exact comparison is meaningful
// there; scene-space callers should compare with a tolerance instead).
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

// Round returns p with both coordinates rounded to the nearest integer,
// matching the construction-time rounding of integer device-unit cuts.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// ConvexHull returns the convex hull of pts using Andrew's monotone chain,
// in counter-clockwise order, with no repeated start point. Input order is
// not preserved; pts is not mutated.
//
// Complexity: O(n log n).
func ConvexHull(pts []Point) []Point {
	n := len(pts)
	if n < 3 {
		out := make([]Point, n)
		copy(out, pts)
		return out
	}

	sorted := make([]Point, n)
	copy(sorted, pts)
	sortPoints(sorted)

	cross := func(o, a, b Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	lower := make([]Point, 0, n)
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Drop the last point of each half since it equals the first of the other.
	lower = lower[:len(lower)-1]
	upper = upper[:len(upper)-1]

	return append(lower, upper...)
}

// sortPoints sorts by X then Y, in place; insertion sort is fine since
// ConvexHull's n is small (hull candidates, not raw scan data).
func sortPoints(pts []Point) {
	for i := 1; i < len(pts); i++ {
		j := i
		for j > 0 && less(pts[j], pts[j-1]) {
			pts[j], pts[j-1] = pts[j-1], pts[j]
			j--
		}
	}
}

func less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// BBox is an axis-aligned bounding box, inclusive of both corners.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBBox returns a degenerate box with inverted bounds, suitable as the
// zero value for an incremental Union fold.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// UnionPoint returns the smallest box containing b and p.
func (b BBox) UnionPoint(p Point) BBox {
	return BBox{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// Union returns the smallest box containing both b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Expand grows b by d on every side. A negative d shrinks it; callers must
// handle the resulting inverted box (MinX > MaxX) as "empty".
func (b BBox) Expand(d float64) BBox {
	return BBox{
		MinX: b.MinX - d, MinY: b.MinY - d,
		MaxX: b.MaxX + d, MaxY: b.MaxY + d,
	}
}

// Contains reports whether o lies entirely within b (inclusive).
func (b BBox) Contains(o BBox) bool {
	if b.MinX > b.MaxX || b.MinY > b.MaxY {
		return false // degenerate box contains nothing
	}
	return o.MinX >= b.MinX && o.MaxX <= b.MaxX && o.MinY >= b.MinY && o.MaxY <= b.MaxY
}

// Overlaps reports whether b and o share any area (inclusive boundaries).
func (b BBox) Overlaps(o BBox) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Center returns the midpoint of b.
func (b BBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Equal reports exact equality of all four bounds.
func (b BBox) Equal(o BBox) bool {
	return b.MinX == o.MinX && b.MinY == o.MinY && b.MaxX == o.MaxX && b.MaxY == o.MaxY
}
