package vmath

import "github.com/lixenwraith/dropchain/core"

// DistSq returns squared Euclidean distance between two points
// Integer-only; callers compare magnitudes so the root is never needed
func DistSq(a, b core.Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// CenterDistSq returns squared distance from the area center to p
func CenterDistSq(a core.Area, p core.Point) int {
	return DistSq(AreaCenter(a), p)
}

// AreaSize returns the cell count of the area, zero for empty areas
func AreaSize(a core.Area) int {
	if a.Empty() {
		return 0
	}
	return a.Width * a.Height
}
