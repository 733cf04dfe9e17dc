package core

import (
	"errors"
	"fmt"
)

// Face identifies one face of the die. The bottom face also sets the roll
// distance: a face of value n carries the die n+1 cells.
type Face uint8

// FaceCount is the number of distinct face identifiers.
const FaceCount = 6

// ErrInvalidLayout is returned when a die layout list is malformed.
var ErrInvalidLayout = errors.New("invalid die layout")

// Dir is a roll direction on the grid.
type Dir uint8

const (
	DirRight Dir = iota // +X
	DirLeft             // -X
	DirFront            // +Y
	DirBack             // -Y
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirLeft:
		return "Left"
	case DirFront:
		return "Front"
	case DirBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction whose roll undoes this one.
func (d Dir) Opposite() Dir {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirFront:
		return DirBack
	default:
		return DirFront
	}
}

// Delta returns the unit grid step of this direction.
func (d Dir) Delta() Vec3 {
	switch d {
	case DirRight:
		return Vec3{X: 1}
	case DirLeft:
		return Vec3{X: -1}
	case DirFront:
		return Vec3{Y: 1}
	default:
		return Vec3{Y: -1}
	}
}

// Layout assigns a face to each of the six spatial slots of the die.
// Top/Bottom, Left/Right and Front/Back always hold the opposing pairs the
// layout was created with; rolls only move pairs between axes.
type Layout struct {
	Top    Face
	Bottom Face
	Left   Face
	Right  Face
	Front  Face
	Back   Face
}

// NewLayout creates a layout from explicit slot values.
func NewLayout(top, bottom, left, right, front, back Face) Layout {
	return Layout{Top: top, Bottom: bottom, Left: left, Right: right, Front: front, Back: back}
}

// LayoutFromList builds a layout from the level file order
// (top, bottom, right, left, front, back).
func LayoutFromList(vals []int) (Layout, error) {
	if len(vals) != 6 {
		return Layout{}, fmt.Errorf("%w: want 6 faces, got %d", ErrInvalidLayout, len(vals))
	}
	for i, v := range vals {
		if v < 0 || v >= FaceCount {
			return Layout{}, fmt.Errorf("%w: face %d out of range at index %d", ErrInvalidLayout, v, i)
		}
	}
	return Layout{
		Top:    Face(vals[0]),
		Bottom: Face(vals[1]),
		Right:  Face(vals[2]),
		Left:   Face(vals[3]),
		Front:  Face(vals[4]),
		Back:   Face(vals[5]),
	}, nil
}

// List returns the layout in level file order (top, bottom, right, left, front, back).
func (l Layout) List() []int {
	return []int{int(l.Top), int(l.Bottom), int(l.Right), int(l.Left), int(l.Front), int(l.Back)}
}

// RollFront tips the die toward +Y: top→front→bottom→back→top.
func (l Layout) RollFront() Layout {
	p := l
	p.Front = l.Top
	p.Bottom = l.Front
	p.Back = l.Bottom
	p.Top = l.Back
	return p
}

// RollBack tips the die toward -Y; it undoes RollFront.
func (l Layout) RollBack() Layout {
	p := l
	p.Back = l.Top
	p.Bottom = l.Back
	p.Front = l.Bottom
	p.Top = l.Front
	return p
}

// RollRight tips the die toward +X: top→right→bottom→left→top.
func (l Layout) RollRight() Layout {
	p := l
	p.Right = l.Top
	p.Bottom = l.Right
	p.Left = l.Bottom
	p.Top = l.Left
	return p
}

// RollLeft tips the die toward -X; it undoes RollRight.
func (l Layout) RollLeft() Layout {
	p := l
	p.Left = l.Top
	p.Bottom = l.Left
	p.Right = l.Bottom
	p.Top = l.Right
	return p
}

// Roll applies the roll for the given direction.
func (l Layout) Roll(d Dir) Layout {
	switch d {
	case DirRight:
		return l.RollRight()
	case DirLeft:
		return l.RollLeft()
	case DirFront:
		return l.RollFront()
	case DirBack:
		return l.RollBack()
	default:
		panic(fmt.Sprintf("layout: unknown roll direction %d", d))
	}
}

// Distance is the number of cells a roll ending in this layout travels.
func (l Layout) Distance() int {
	return int(l.Bottom) + 1
}

// Pair is an unordered pair of opposing faces, stored low-first.
type Pair [2]Face

func makePair(a, b Face) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{a, b}
}

// Pairs returns the three opposing pairs in axis order (vertical, X, Y).
func (l Layout) Pairs() [3]Pair {
	return [3]Pair{
		makePair(l.Top, l.Bottom),
		makePair(l.Left, l.Right),
		makePair(l.Front, l.Back),
	}
}

// PairSet returns the opposing pairs sorted, independent of axis.
func (l Layout) PairSet() [3]Pair {
	ps := l.Pairs()
	// Three elements: a fixed insertion sort is enough.
	for i := 1; i < len(ps); i++ {
		for j := i; j > 0 && less(ps[j], ps[j-1]); j-- {
			ps[j], ps[j-1] = ps[j-1], ps[j]
		}
	}
	return ps
}

func less(a, b Pair) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

// String returns the layout in level file order.
func (l Layout) String() string {
	return fmt.Sprintf("top=%d bottom=%d right=%d left=%d front=%d back=%d",
		l.Top, l.Bottom, l.Right, l.Left, l.Front, l.Back)
}
