package layout

import "github.com/charmbracelet/x/cellbuf"

// Rect is a convenience constructor mirroring cellbuf.Rect, so layout
// callers do not need a second import for plain rectangles.
func Rect(x, y, w, h int) cellbuf.Rectangle {
	return cellbuf.Rect(x, y, w, h)
}

// Box is a rectangle that can be divided into rows or columns under a
// list of constraints. Division is deterministic: the same box and
// constraints always produce the same slots.
type Box struct {
	R cellbuf.Rectangle
}

// NewBox wraps a rectangle.
func NewBox(r cellbuf.Rectangle) Box {
	return Box{R: r}
}

type constraintKind int

const (
	kindFixed constraintKind = iota
	kindPercent
	kindFill
)

// Constraint describes how much of the divided axis one slot takes.
type Constraint struct {
	kind   constraintKind
	amount float64
}

// Fixed takes exactly n cells.
func Fixed(n int) Constraint {
	return Constraint{kind: kindFixed, amount: float64(n)}
}

// Percent takes p percent of the whole axis, truncated to whole cells.
func Percent(p float64) Constraint {
	return Constraint{kind: kindPercent, amount: p}
}

// Fill takes a weighted share of whatever remains after fixed and
// percent constraints. Remainder cells go to the first fill.
func Fill(weight int) Constraint {
	return Constraint{kind: kindFill, amount: float64(weight)}
}

// V divides the box into rows, top to bottom.
func (b Box) V(cs ...Constraint) []Box {
	sizes := divide(b.R.Dy(), cs)
	boxes := make([]Box, len(cs))
	y := b.R.Min.Y
	for i, size := range sizes {
		boxes[i] = NewBox(cellbuf.Rect(b.R.Min.X, y, b.R.Dx(), size))
		y += size
	}
	return boxes
}

// H divides the box into columns, left to right.
func (b Box) H(cs ...Constraint) []Box {
	sizes := divide(b.R.Dx(), cs)
	boxes := make([]Box, len(cs))
	x := b.R.Min.X
	for i, size := range sizes {
		boxes[i] = NewBox(cellbuf.Rect(x, b.R.Min.Y, size, b.R.Dy()))
		x += size
	}
	return boxes
}

// divide resolves constraints against a total axis length. Fixed and
// percent slots are allocated first; fills split the remainder by
// weight with the leftover cells going to the first fill. Sizes never
// go negative, and over-subscription shrinks trailing slots to zero.
func divide(total int, cs []Constraint) []int {
	sizes := make([]int, len(cs))
	remaining := total

	fillWeight := 0
	for i, c := range cs {
		switch c.kind {
		case kindFixed:
			sizes[i] = int(c.amount)
		case kindPercent:
			sizes[i] = int(float64(total) * c.amount / 100)
		case kindFill:
			fillWeight += int(c.amount)
		}
		if sizes[i] > remaining {
			sizes[i] = remaining
		}
		remaining -= sizes[i]
	}

	if fillWeight > 0 && remaining > 0 {
		share := remaining / fillWeight
		leftover := remaining - share*fillWeight
		for i, c := range cs {
			if c.kind != kindFill {
				continue
			}
			sizes[i] = share * int(c.amount)
			if leftover > 0 {
				sizes[i] += leftover
				leftover = 0
			}
		}
	}

	return sizes
}
