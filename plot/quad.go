package plot

import "math"

// QuadBezier plots the integer Zingl quadratic Bézier from (x0,y0) through
// control point (x1,y1) to (x2,y2). The curve is split at horizontal and
// vertical gradient-sign changes into up to three monotone arcs, each
// stepped by quadBezierSeg; any degenerate tail falls back to a
// straight line.
//
// Complexity: O(length in pixels).
func QuadBezier(x0, y0, x1, y1, x2, y2 int) []Step {
	out := make([]Step, 0, 64)
	out = quadBezier(out, x0, y0, x1, y1, x2, y2)
	return out
}

func appendSteps(dst, src []Step) []Step {
	for i, s := range src {
		if i == 0 && len(dst) > 0 {
			last := dst[len(dst)-1]
			if last.X == s.X && last.Y == s.Y {
				continue // shared boundary pixel between chained segments
			}
		}
		dst = append(dst, s)
	}
	return dst
}

func quadBezier(out []Step, x0, y0, x1, y1, x2, y2 int) []Step {
	x := x0 - x1
	y := y0 - y1
	t := float64(x0 - 2*x1 + x2)

	if float64(x*(x2-x1)) > 0 {
		if float64(y*(y2-y1)) > 0 {
			if math.Abs(float64(y0-2*y1+y2)/t*float64(x)) > float64(abs(y)) {
				x0, x2 = x2, x+x1
				y0, y2 = y2, y+y1
			}
		}
		t = float64(x0-x1) / t
		r := (1-t)*((1-t)*float64(y0)+2*t*float64(y1)) + t*t*float64(y2)
		t = float64(x0*x2-x1*x1) * t / float64(x0-x1)
		xm := int(math.Floor(t + 0.5))
		ym := int(math.Floor(r + 0.5))
		r = float64(y1-y0)*(t-float64(x0))/float64(x1-x0) + float64(y0)
		out = appendSteps(out, quadBezierSeg(x0, y0, xm, int(math.Round(r)), xm, ym))

		r = float64(y1-y2)*(t-float64(x2))/float64(x1-x2) + float64(y2)
		x0, x1 = xm, xm
		y0 = ym
		y1 = int(math.Round(r))
	}

	if float64((y0-y1)*(y2-y1)) > 0 {
		t = float64(y0 - 2*y1 + y2)
		t = float64(y0-y1) / t
		r := (1-t)*((1-t)*float64(x0)+2*t*float64(x1)) + t*t*float64(x2)
		t = float64(y0*y2-y1*y1) * t / float64(y0-y1)
		ym := int(math.Floor(t + 0.5))
		xm := int(math.Floor(r + 0.5))
		r = float64(x1-x0)*(t-float64(y0))/float64(y1-y0) + float64(x0)
		out = appendSteps(out, quadBezierSeg(x0, y0, int(math.Round(r)), ym, xm, ym))

		r = float64(x1-x2)*(t-float64(y2))/float64(y1-y2) + float64(x2)
		x0 = xm
		y0, y1 = ym, ym
		x1 = int(math.Round(r))
	}

	out = appendSteps(out, quadBezierSeg(x0, y0, x1, y1, x2, y2))
	return out
}

// quadBezierSeg plots a single monotone quadratic arc (the caller
// guarantees xx*sx <= 0 && yy*sy <= 0 in Zingl's original terms, i.e. the
// control point does not overshoot the chord on either axis).
func quadBezierSeg(x0, y0, x1, y1, x2, y2 int) []Step {
	out := make([]Step, 0, 32)

	sx := x2 - x1
	sy := y2 - y1
	xx := x0 - x1
	yy := y0 - y1
	cur := float64(xx*sy - yy*sx)

	// Begin with the longer part: when the shorter leg starts second, walk
	// from the far endpoint instead and reverse the buffered pixels at the
	// end, so the segment still emits in path order.
	swapped := false
	if sx*sx+sy*sy > xx*xx+yy*yy {
		x2, x0 = x0, sx+x1
		y2, y0 = y0, sy+y1
		cur = -cur
		swapped = true
	}

	if cur == 0 {
		return pathOrder(appendSteps(out, Line(x0, y0, x2, y2)), swapped)
	}

	fxx := float64(xx + sx)
	fyy := float64(yy + sy)
	sxF := 1.0
	if x0 >= x2 {
		sxF = -1.0
	}
	syF := 1.0
	if y0 >= y2 {
		syF = -1.0
	}
	fxx *= sxF
	fyy *= syF
	xy := 2 * fxx * fyy
	fxx *= fxx
	fyy *= fyy

	if cur*sxF*syF < 0 {
		fxx, fyy, xy, cur = -fxx, -fyy, -xy, -cur
	}

	dx := 4*syF*cur*float64(x1-x0) + fxx - xy
	dy := 4*sxF*cur*float64(y0-y1) + fyy - xy
	fxx += fxx
	fyy += fyy
	errv := dx + dy + xy

	for {
		out = append(out, Step{X: x0, Y: y0, On: true})
		if x0 == x2 && y0 == y2 {
			return pathOrder(out, swapped)
		}
		y1Flag := 2*errv < dx
		if 2*errv > dy {
			x0 += int(sxF)
			dx -= xy
			dy += fyy
			errv += dy
		}
		if y1Flag {
			y0 += int(syF)
			dy -= xy
			dx += fxx
			errv += dx
		}
		if dy >= dx {
			break
		}
	}
	return pathOrder(appendSteps(out, Line(x0, y0, x2, y2)), swapped)
}

// pathOrder reverses steps in place when the segment was walked from its
// far endpoint, restoring start-to-end emission order.
func pathOrder(steps []Step, swapped bool) []Step {
	if !swapped {
		return steps
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
