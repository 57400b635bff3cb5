// Package render draws the arena onto a terminal canvas. It implements
// the object.Scene collaborator and frames the view with a Camera.
package render

import (
	"math"

	"github.com/tomz197/riftarena/internal/draw"
	"github.com/tomz197/riftarena/internal/physics"
)

// Camera defaults.
const (
	DefaultViewWidth = 64.0 // world units across the canvas
)

// DefaultOffset places the camera above and behind the followed point.
var DefaultOffset = physics.V(0, 30, 30)

// Camera frames the arena with an orthographic projection tilted to match
// a camera sitting at Offset from Center, looking at Center.
// Logical canvas coordinates equal the camera's view coordinates, so the
// canvas logical size must be kept at (ViewWidth, ViewHeight).
type Camera struct {
	Center     physics.Vec3
	Offset     physics.Vec3
	ViewWidth  float64
	ViewHeight float64
}

// NewCamera returns a camera with the default offset and view width.
func NewCamera() *Camera {
	return &Camera{
		Offset:     DefaultOffset,
		ViewWidth:  DefaultViewWidth,
		ViewHeight: DefaultViewWidth / 2,
	}
}

// Follow centres the view on p's ground position.
func (c *Camera) Follow(p physics.Vec3) {
	c.Center = physics.V(p.X, 0, p.Z)
}

// Fit sets ViewHeight so one world unit covers the same number of
// sub-pixels on both axes of a cols x rows half-block canvas.
func (c *Camera) Fit(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	c.ViewHeight = c.ViewWidth * float64(rows*2) / float64(cols)
}

// Facing is the unit direction the camera looks along.
func (c *Camera) Facing() physics.Vec3 {
	f := c.Offset.Scale(-1).Normalize()
	if f.Len() == 0 {
		return physics.V(0, -1, 0)
	}
	return f
}

// tilt returns sin and cos of the camera's elevation above the ground.
func (c *Camera) tilt() (sin, cos float64) {
	if c.Offset.Y <= 0 {
		return 1, 0
	}
	theta := math.Atan2(c.Offset.Y, c.Offset.Z)
	return math.Sin(theta), math.Cos(theta)
}

// Project maps a world point to logical canvas coordinates. Ground depth
// is foreshortened by the camera tilt and height lifts the point up.
func (c *Camera) Project(p physics.Vec3) draw.Point {
	sin, cos := c.tilt()
	return draw.Point{
		X: p.X - c.Center.X + c.ViewWidth/2,
		Y: (p.Z-c.Center.Z)*sin - p.Y*cos + c.ViewHeight/2,
	}
}

// ScreenToGround inverts Project on the y=0 plane.
func (c *Camera) ScreenToGround(pt draw.Point) physics.Vec3 {
	sin, _ := c.tilt()
	return physics.V(
		pt.X-c.ViewWidth/2+c.Center.X,
		0,
		(pt.Y-c.ViewHeight/2)/sin+c.Center.Z,
	)
}
