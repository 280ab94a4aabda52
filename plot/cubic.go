package plot

import "math"

// CubicBezier plots the integer Zingl cubic Bézier from (x0,y0) through
// control points (x1,y1),(x2,y2) to (x3,y3).
//
// The curve is first subdivided at up to four parameter values where
// either axis's gradient changes sign, a bubble-sorted t[] table exactly
// as in the original; each resulting segment is then stepped by
// cubicBezierSeg. This mirrors QuadBezier/quadBezierSeg's split-then-step
// shape one degree up.
//
// Complexity: O(length in pixels).
func CubicBezier(x0, y0, x1, y1, x2, y2, x3, y3 int) []Step {
	out := make([]Step, 0, 64)

	xc := float64(x0 + x1 - x2 - x3)
	xa := xc - 4*float64(x1-x2)
	xb := float64(x0 - x1 - x2 + x3)
	xd := xb + 4*float64(x1+x2)
	yc := float64(y0 + y1 - y2 - y3)
	ya := yc - 4*float64(y1-y2)
	yb := float64(y0 - y1 - y2 + y3)
	yd := yb + 4*float64(y1+y2)

	fx0 := float64(x0)
	fy0 := float64(y0)

	var t [5]float64
	n := 0

	t1 := xb*xb - xa*xc
	if xa == 0 {
		if math.Abs(xc) < 2*math.Abs(xb) {
			t[n] = xc / (2.0 * xb)
			n++
		}
	} else if t1 > 0.0 {
		t2 := math.Sqrt(t1)
		r := (xb - t2) / xa
		if math.Abs(r) < 1.0 {
			t[n] = r
			n++
		}
		r = (xb + t2) / xa
		if math.Abs(r) < 1.0 {
			t[n] = r
			n++
		}
	}

	t1 = yb*yb - ya*yc
	if ya == 0 {
		if math.Abs(yc) < 2*math.Abs(yb) {
			t[n] = yc / (2.0 * yb)
			n++
		}
	} else if t1 > 0.0 {
		t2 := math.Sqrt(t1)
		r := (yb - t2) / ya
		if math.Abs(r) < 1.0 {
			t[n] = r
			n++
		}
		r = (yb + t2) / ya
		if math.Abs(r) < 1.0 {
			t[n] = r
			n++
		}
	}

	for i := 1; i < n; i++ { // bubble sort of up to 4 roots
		r := t[i-1]
		if r > t[i] {
			t[i-1] = t[i]
			t[i] = r
			i = 0
		}
	}

	t1 = -1.0
	t[n] = 1.0

	cx0, cy0 := x0, y0
	for i := 0; i <= n; i++ {
		t2 := t[i]
		fx1 := (t1*(t1*xb-2*xc)-t2*(t1*(t1*xa-2*xb)+xc)+xd)/8 - fx0
		fy1 := (t1*(t1*yb-2*yc)-t2*(t1*(t1*ya-2*yb)+yc)+yd)/8 - fy0
		fx2 := (t2*(t2*xb-2*xc)-t1*(t2*(t2*xa-2*xb)+xc)+xd)/8 - fx0
		fy2 := (t2*(t2*yb-2*yc)-t1*(t2*(t2*ya-2*yb)+yc)+yd)/8 - fy0
		fx3 := (t2*(t2*(3*xb-t2*xa)-3*xc) + xd) / 8
		fx0 -= fx3
		fy3 := (t2*(t2*(3*yb-t2*ya)-3*yc) + yd) / 8
		fy0 -= fy3

		cx3 := int(math.Floor(fx3 + 0.5))
		cy3 := int(math.Floor(fy3 + 0.5))

		if fx0 != 0.0 {
			fx0 = float64(cx0-cx3) / fx0
			fx1 *= fx0
			fx2 *= fx0
		}
		if fy0 != 0.0 {
			fy0 = float64(cy0-cy3) / fy0
			fy1 *= fy0
			fy2 *= fy0
		}

		if cx0 != cx3 || cy0 != cy3 {
			seg := cubicBezierSeg(cx0, cy0, float64(cx0)+fx1, float64(cy0)+fy1, float64(cx0)+fx2, float64(cy0)+fy2, cx3, cy3)
			out = appendSteps(out, seg)
		}

		cx0, cy0 = cx3, cy3
		fx0, fy0 = fx3, fy3
		t1 = t2
	}

	return out
}

// cubicBezierSeg plots a single, possibly self-intersecting, cubic arc
// (Zingl's plot_cubic_bezier_seg): it walks inward from both endpoints
// ("legs") along the curve's error-diffusion stepping, stopping each leg
// when it enters the region ambiguous between the two possible resolutions
// of a self-intersection loop or cusp, then bridges whatever gap remains
// between the two legs with a straight line.
func cubicBezierSeg(x0, y0 int, x1, y1, x2, y2 float64, x3, y3 int) []Step {
	out := make([]Step, 0, 64)
	var second []Step

	sx, sy := 1, 1
	if x0 >= x3 {
		sx = -1
	}
	if y0 >= y3 {
		sy = -1
	}

	xc := -math.Abs(float64(x0) + x1 - x2 - float64(x3))
	xa := xc - 4*float64(sx)*(x1-x2)
	xb := float64(sx) * (float64(x0) - x1 - x2 + float64(x3))
	yc := -math.Abs(float64(y0) + y1 - y2 - float64(y3))
	ya := yc - 4*float64(sy)*(y1-y2)
	yb := float64(sy) * (float64(y0) - y1 - y2 + float64(y3))

	if xa == 0 && ya == 0 { // reduces to a quadratic Bézier
		mx := int(math.Floor((3*x1 - float64(x0) + 1) / 2))
		my := int(math.Floor((3*y1 - float64(y0) + 1) / 2))
		return quadBezierSeg(x0, y0, mx, my, x3, y3)
	}

	lenCur := (x1-float64(x0))*(x1-float64(x0)) + (y1-float64(y0))*(y1-float64(y0)) + 1
	lenOther := (x2-float64(x3))*(x2-float64(x3)) + (y2-float64(y3))*(y2-float64(y3)) + 1

	leg := 1
	for {
		ab := xa*yb - xb*ya
		ac := xa*yc - xc*ya
		bc := xb*yc - xc*yb
		ex := ab*(ab+ac-3*bc) + ac*ac // P0 part of a self-intersection loop?

		var f float64
		if ex > 0 {
			f = 1
		} else {
			f = math.Floor(math.Sqrt(1 + 1024/lenCur))
		}
		ab *= f
		ac *= f
		bc *= f
		ex *= f * f

		xy := 9 * (ab + ac + bc) / 8
		cb := 8 * (xa - ya) // 1st-degree differences
		dx := 27*(8*ab*(yb*yb-ya*yc)+ex*(ya+2*yb+yc))/64 - ya*ya*(xy-ya)
		dy := 27*(8*ab*(xb*xb-xa*xc)-ex*(xa+2*xb+xc))/64 - xa*xa*(xy+xa)
		xx := 3 * (3*ab*(3*yb*yb-ya*ya-2*ya*yc) - ya*(3*ac*(ya+yb)+ya*cb)) / 4 // 2nd-degree differences
		yy := 3 * (3*ab*(3*xb*xb-xa*xa-2*xa*xc) - xa*(3*ac*(xa+xb)+xa*cb)) / 4
		xy = xa * ya * (6*ab + 6*ac - 3*bc + cb)
		ac = ya * ya
		cb = xa * xa
		xy = 3 * (xy + 9*f*(cb*yb*yc-xb*xc*ac) - 18*xb*yb*ab) / 8

		if ex < 0 { // inside the self-intersection loop: negate
			dx, dy, xx, yy, xy, ac, cb = -dx, -dy, -xx, -yy, -xy, -ac, -cb
		}
		ab = 6 * ya * ac
		ac = -6 * xa * ac
		bc = 6 * ya * cb
		cb = -6 * xa * cb // 3rd-degree differences
		dx += xy
		ex = dx + dy
		dy += xy // error of first step

		fx, fy := f, f
		pxy := 0

	stepLoop:
		for x0 != x3 && y0 != y3 {
			if leg == 0 {
				second = append(second, Step{X: x0, Y: y0, On: true})
			} else {
				out = append(out, Step{X: x0, Y: y0, On: true})
			}
			for {
				if pxy == 0 {
					if dx > xy || dy < xy {
						break stepLoop
					}
				} else if pxy == 1 {
					if dx > 0 || dy < 0 {
						break stepLoop
					}
				}
				y1v := 2*ex - dy // test value for the y sub-step
				if 2*ex >= dx {  // x sub-step
					fx--
					dx += xx
					ex += dx
					xy += ac
					dy += xy
					yy += bc
					xx += ab
				} else if y1v > 0 {
					break stepLoop
				}
				if y1v <= 0 { // y sub-step
					fy--
					dy += yy
					ex += dy
					xy += bc
					dx += xy
					xx += ac
					yy += cb
				}
				if !(fx > 0 && fy > 0) { // pixel complete?
					break
				}
			}
			if 2*fx <= f {
				x0 += sx
				fx += f
			}
			if 2*fy <= f {
				y0 += sy
				fy += f
			}
			if pxy == 0 && dx < 0 && dy > 0 {
				pxy = 1
			}
		}

		x0, x3 = x3, x0
		sx = -sx
		xb = -xb
		y0, y3 = y3, y0
		sy = -sy
		yb = -yb
		lenCur = lenOther

		if leg == 0 {
			break
		}
		leg--
	}

	bridge := Line(x3, y3, x0, y0) // remaining part, in case of cusp or crunode
	second = append(second, bridge...)
	for i := len(second) - 1; i >= 0; i-- {
		out = append(out, second[i])
	}
	return out
}
