package vmath

import "math"

// Ellipse helpers for decal rasterization
// Coordinates are float pixel space, rot is radians around the ellipse center

// EllipseDistSq returns normalized squared distance of (px,py) from the ellipse
// Result <= 1 means the point is inside
func EllipseDistSq(px, py, cx, cy, rw, rh, rot float64) float64 {
	if rw <= 0 || rh <= 0 {
		return math.Inf(1)
	}
	dx, dy := px-cx, py-cy
	if rot != 0 {
		sin, cos := math.Sincos(-rot)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}
	nx, ny := dx/rw, dy/rh
	return nx*nx + ny*ny
}

// EllipseContains returns true if point is inside or on the ellipse boundary
func EllipseContains(px, py, cx, cy, rw, rh, rot float64) bool {
	return EllipseDistSq(px, py, cx, cy, rw, rh, rot) <= 1
}
