package plot

// Line plots the integer Bresenham line from (x0,y0) to (x1,y1) inclusive
// of both endpoints. Every emitted Step has On=true; a degenerate
// (x0,y0)==(x1,y1) line yields exactly one Step.
//
// Complexity: O(max(|dx|,|dy|)).
func Line(x0, y0, x1, y1 int) []Step {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)
	err := dx + dy

	// Upper bound on steps is dx-dy+1; preallocate to avoid growth churn.
	out := make([]Step, 0, dx-dy+1)

	x, y := x0, y0
	for {
		out = append(out, Step{X: x, Y: y, On: true})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return out
}
