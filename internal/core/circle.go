package core

// FillCircle plots every pixel whose offset (x, y) from the center satisfies
// x*x + y*y <= r*r, scanning the bounding square. No anti-aliasing.
func FillCircle(dst *Canvas, cx, cy, r int) {
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			if x*x+y*y <= r*r {
				dst.DrawPoint(cx+x, cy+y)
			}
		}
	}
}

// CirclesOverlap reports whether two circles touch or overlap, comparing the
// squared center distance against the squared sum of radii.
func CirclesOverlap(a Point, ra int, b Point, rb int) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	sum := ra + rb
	return dx*dx+dy*dy <= sum*sum
}

// CircleFits reports whether a circle stays strictly inside a w×h area.
func CircleFits(c Point, r, w, h int) bool {
	return c.X-r > 0 && c.X+r < w && c.Y-r > 0 && c.Y+r < h
}
