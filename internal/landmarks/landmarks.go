// Package landmarks defines the 468-point face landmark set produced by the
// detector collaborator and the MediaPipe Face Mesh index constants the
// analyzers select from it.
package landmarks

import (
	"fmt"

	"FATIGUE_MONITOR/go-backend/internal/geometry"
)

// NumLandmarks is the fixed size of a MediaPipe Face Mesh landmark set.
const NumLandmarks = 468

// MediaPipe Face Mesh indices. The six eye points are ordered for the EAR
// formula: p1 outer corner, p2/p3 upper lid, p4 inner corner, p5/p6 lower lid.
var (
	LeftEye  = [6]int{33, 160, 158, 133, 153, 144}
	RightEye = [6]int{362, 385, 387, 263, 373, 380}

	// PosePoints pairs with the canonical 3D face model for the head-pose
	// solve: nose tip, chin, left eye outer corner, right eye outer corner,
	// left mouth corner, right mouth corner.
	PosePoints = [6]int{1, 152, 33, 263, 61, 291}
)

const (
	NoseTip = 1
	Chin    = 152
)

// Set is one frame's landmark set: 468 points with X,Y normalized to the
// frame and Z as relative depth. A Set is immutable once produced; the
// analyzers read it concurrently without copying.
type Set struct {
	points [NumLandmarks]geometry.Point3
}

// NewSet builds a Set from exactly NumLandmarks points.
func NewSet(points []geometry.Point3) (*Set, error) {
	if len(points) != NumLandmarks {
		return nil, fmt.Errorf("landmark set has %d points, want %d", len(points), NumLandmarks)
	}
	s := &Set{}
	copy(s.points[:], points)
	return s, nil
}

// Point returns the normalized landmark at index i.
func (s *Set) Point(i int) geometry.Point3 {
	return s.points[i]
}

// PixelPoint returns landmark i scaled to pixel coordinates.
func (s *Set) PixelPoint(i, frameWidth, frameHeight int) geometry.Point2 {
	p := s.points[i]
	return geometry.Point2{
		X: p.X * float64(frameWidth),
		Y: p.Y * float64(frameHeight),
	}
}

// PixelPoints returns the given landmark indices scaled to pixel coordinates.
func (s *Set) PixelPoints(indices []int, frameWidth, frameHeight int) []geometry.Point2 {
	out := make([]geometry.Point2, len(indices))
	for i, idx := range indices {
		out[i] = s.PixelPoint(idx, frameWidth, frameHeight)
	}
	return out
}

// BBoxWidthPx returns the width in pixels of the axis-aligned bounding box
// over all landmarks.
func (s *Set) BBoxWidthPx(frameWidth int) float64 {
	minX, maxX := s.points[0].X, s.points[0].X
	for _, p := range s.points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}
	return (maxX - minX) * float64(frameWidth)
}
