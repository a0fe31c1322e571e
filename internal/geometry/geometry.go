// Package geometry provides the small amount of point math shared by the
// analyzers: 2D Euclidean distances and centroids.
package geometry

import "math"

// Point2 is a point in pixel or normalized image coordinates.
type Point2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point3 is a 3D point. For face landmarks X and Y are normalized to the
// frame ([0,1]) and Z is relative depth as produced by the detector.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Dist2 returns the Euclidean distance between two 2D points.
func Dist2(a, b Point2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Centroid2 returns the arithmetic mean of the given 2D points.
// Returns the zero point for an empty slice.
func Centroid2(points []Point2) Point2 {
	if len(points) == 0 {
		return Point2{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point2{X: sx / n, Y: sy / n}
}
