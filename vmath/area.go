package vmath

import "github.com/lixenwraith/dropchain/core"

// AreaCenter returns the center point of the area
func AreaCenter(a core.Area) core.Point {
	return core.Point{
		X: a.X + a.Width/2,
		Y: a.Y + a.Height/2,
	}
}

// AreaContains checks if point is within area
func AreaContains(a core.Area, p core.Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}

// AreaWithin reports whether inner lies entirely inside outer
func AreaWithin(inner, outer core.Area) bool {
	return inner.X >= outer.X && inner.Y >= outer.Y &&
		inner.X+inner.Width <= outer.X+outer.Width &&
		inner.Y+inner.Height <= outer.Y+outer.Height
}
