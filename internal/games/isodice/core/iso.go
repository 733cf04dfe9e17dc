// Package core provides the core game logic for the isodice rolling-die puzzle.
// This package is UI-agnostic and deterministic: no clocks, no randomness, no I/O
// beyond decoding an already opened level image.
package core

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/isodice/internal/core"
)

// Isometric projection constants, in projected pixels.
const (
	XOffset       = 11 // Horizontal screen offset per grid step
	YOffset       = 5  // Vertical screen offset per grid step
	ElementWidth  = 23 // Projected footprint width of one element
	ElementHeight = 22 // Projected footprint height of one element
)

// Vec3 is an integer grid position. Z is the height layer.
type Vec3 struct {
	X, Y, Z int
}

// V is a convenience constructor for Vec3.
func V(x, y, z int) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of two positions.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// String returns a string representation of the position.
func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Float converts the grid position to a float position.
func (v Vec3) Float() FVec3 {
	return FVec3{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FVec3 is a continuous world position, used by drifting particles.
type FVec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two float positions.
func (v FVec3) Add(o FVec3) FVec3 {
	return FVec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Vec2 is a projected screen offset.
type Vec2 struct {
	X, Y int
}

// FVec2 is a projected screen offset with sub-pixel precision.
type FVec2 struct {
	X, Y float64
}

// Project converts a grid position to its screen offset.
func Project(p Vec3) Vec2 {
	return Vec2{
		X: (p.X - p.Y) * XOffset,
		Y: (p.X + p.Y - p.Z) * YOffset,
	}
}

// ProjectF is Project for continuous positions.
func ProjectF(p FVec3) FVec2 {
	return FVec2{
		X: (p.X - p.Y) * XOffset,
		Y: (p.X + p.Y - p.Z) * YOffset,
	}
}

// Footprint returns the projected rectangle an element at p covers.
func Footprint(p Vec3) platformcore.Rect {
	s := Project(p)
	return platformcore.NewRect(s.X, s.Y, ElementWidth, ElementHeight)
}

// FootprintF returns the projected rectangle of a continuous position,
// with the corner rounded down to whole pixels.
func FootprintF(p FVec3) platformcore.Rect {
	s := ProjectF(p)
	return platformcore.NewRect(int(math.Floor(s.X)), int(math.Floor(s.Y)), ElementWidth, ElementHeight)
}

// DepthKey is the painter's order key: projected Y plus the height term.
// Lower keys are drawn first.
func DepthKey(p FVec3) float64 {
	return ProjectF(p).Y + p.Z*YOffset
}
