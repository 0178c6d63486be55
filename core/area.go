package core

// Area represents a rectangular region in terminal cells
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (zero-sized areas contain nothing)
}

// Empty reports whether the area covers no cells
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Inset shrinks the area by n cells on every side
// Returns a zero-sized area anchored at the original center when fully collapsed
func (a Area) Inset(n int) Area {
	r := Area{X: a.X + n, Y: a.Y + n, Width: a.Width - 2*n, Height: a.Height - 2*n}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}
