package core

import (
	"math"

	platformcore "github.com/vovakirdan/isodice/internal/core"
)

// FollowDivisor is the fraction of the remaining offset the camera closes each tick.
const FollowDivisor = 10

// Camera is a view rectangle in projected (screen) space.
type Camera struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewCamera creates a camera of the given projected size at the origin.
func NewCamera(w, h float64) *Camera {
	return &Camera{W: w, H: h}
}

// Rect returns the view rectangle, expanded outward to whole pixels.
func (c *Camera) Rect() platformcore.Rect {
	x := math.Floor(c.X)
	y := math.Floor(c.Y)
	return platformcore.NewRect(int(x), int(y), int(math.Ceil(c.X+c.W)-x), int(math.Ceil(c.Y+c.H)-y))
}

// Center returns the center of the view.
func (c *Camera) Center() FVec2 {
	return FVec2{X: c.X + c.W/2, Y: c.Y + c.H/2}
}

// Resize changes the view size, keeping its center.
func (c *Camera) Resize(w, h float64) {
	center := c.Center()
	c.W, c.H = w, h
	c.X = center.X - w/2
	c.Y = center.Y - h/2
}

// Target returns the point the camera follows: the die's projected position.
func Target(d *Die) FVec2 {
	p := Project(d.Position())
	return FVec2{X: float64(p.X), Y: float64(p.Y)}
}

// Follow moves the view center a tenth of the way to the die.
func (c *Camera) Follow(d *Die) {
	if d == nil {
		return
	}
	t := Target(d)
	center := c.Center()
	c.X += (t.X - center.X) / FollowDivisor
	c.Y += (t.Y - center.Y) / FollowDivisor
}

// CenterOn snaps the view onto the die.
func (c *Camera) CenterOn(d *Die) {
	if d == nil {
		return
	}
	t := Target(d)
	c.X = t.X - c.W/2
	c.Y = t.Y - c.H/2
}

// InView reports whether an element at grid position p intersects the view.
func (c *Camera) InView(p Vec3) bool {
	return c.Rect().Intersects(Footprint(p))
}

// InViewF reports whether an element at continuous position p intersects the view.
func (c *Camera) InViewF(p FVec3) bool {
	return c.Rect().Intersects(FootprintF(p))
}
