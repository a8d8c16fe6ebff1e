package geom

// SignedArea returns the shoelace area of the closed polygon pts. The sign is
// positive for clockwise winding on screen (y down).
func SignedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += Cross(pts[i], pts[j])
	}
	return a / 2
}

// SelfIntersects reports whether any two non-adjacent edges of the closed
// polygon pts cross or touch. Adjacent edges share a vertex and are skipped.
func SelfIntersects(pts []Point) bool {
	n := len(pts)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a0, a1 := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b0, b1 := pts[j], pts[(j+1)%n]
			if segmentsIntersect(a0, a1, b0, b1) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(p1, p2, q1, q2 Point) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)
	if ((d1 > Eps && d2 < -Eps) || (d1 < -Eps && d2 > Eps)) &&
		((d3 > Eps && d4 < -Eps) || (d3 < -Eps && d4 > Eps)) {
		return true
	}
	return (abs(d1) <= Eps && onSegment(q1, q2, p1)) ||
		(abs(d2) <= Eps && onSegment(q1, q2, p2)) ||
		(abs(d3) <= Eps && onSegment(p1, p2, q1)) ||
		(abs(d4) <= Eps && onSegment(p1, p2, q2))
}

func orient(a, b, c Point) float64 { return Cross(b.Sub(a), c.Sub(a)) }

func onSegment(a, b, p Point) bool {
	return p.X >= min(a.X, b.X)-Eps && p.X <= max(a.X, b.X)+Eps &&
		p.Y >= min(a.Y, b.Y)-Eps && p.Y <= max(a.Y, b.Y)+Eps
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
