package geom_test

import (
	"fmt"

	"github.com/katalvlaran/lasercore/geom"
)

// ExampleMatrix demonstrates composing a scale with a world-frame
// translation and applying the result to a point.
func ExampleMatrix() {
	m := geom.Identity()
	m.PostScale(2, 2).PreTranslate(5, 0)

	p := m.Apply(geom.Pt(1, 1))
	fmt.Println(p.X, p.Y)

	// Output:
	// 7 2
}

// ExampleConvexHull computes the hull of a square with an interior point;
// the interior point is excluded and the hull comes back in
// counter-clockwise order.
func ExampleConvexHull() {
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 5, Y: 5}, // interior
	}
	for _, p := range geom.ConvexHull(pts) {
		fmt.Println(p.X, p.Y)
	}

	// Output:
	// 0 0
	// 10 0
	// 10 10
	// 0 10
}
