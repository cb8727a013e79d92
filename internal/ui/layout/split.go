package layout

// Split divides a box between a main area and a secondary panel and
// remembers the panel's share so it can be resized at runtime, either
// by keys or by dragging with the mouse.
type Split struct {
	Percentage float64 // 0-100, share of the secondary panel
	Vertical   bool    // true = main on top, panel below
	MinPercent float64
	MaxPercent float64
}

// NewSplit builds a split giving the secondary panel the requested
// percentage, clamped to sensible bounds.
func NewSplit(percentage float64, vertical bool) *Split {
	s := &Split{
		Percentage: percentage,
		Vertical:   vertical,
		MinPercent: 10,
		MaxPercent: 95,
	}
	s.clamp()
	return s
}

// Apply divides the box. Main comes first (top or left), the secondary
// panel second.
func (s *Split) Apply(box Box) (main, secondary Box) {
	mainPct := 100 - s.Percentage
	if s.Vertical {
		boxes := box.V(Percent(mainPct), Fill(1))
		return boxes[0], boxes[1]
	}
	boxes := box.H(Percent(mainPct), Fill(1))
	return boxes[0], boxes[1]
}

// DragTo recomputes the percentage from a pointer position inside the
// box and reports whether it changed. For vertical splits the panel
// share is the distance from the bottom edge; for horizontal splits,
// from the right edge.
func (s *Split) DragTo(box Box, x, y int) bool {
	oldPct := s.Percentage

	if s.Vertical {
		totalHeight := box.R.Dy()
		if totalHeight <= 0 {
			return false
		}
		fromBottom := box.R.Max.Y - y
		s.Percentage = float64(fromBottom*100) / float64(totalHeight)
	} else {
		totalWidth := box.R.Dx()
		if totalWidth <= 0 {
			return false
		}
		fromRight := box.R.Max.X - x
		s.Percentage = float64(fromRight*100) / float64(totalWidth)
	}

	s.clamp()
	return s.Percentage != oldPct
}

// Expand grows the secondary panel by delta percent.
func (s *Split) Expand(delta float64) {
	s.Percentage += delta
	s.clamp()
}

// Shrink gives delta percent back to the main area.
func (s *Split) Shrink(delta float64) {
	s.Percentage -= delta
	s.clamp()
}

func (s *Split) clamp() {
	if s.Percentage < s.MinPercent {
		s.Percentage = s.MinPercent
	}
	if s.Percentage > s.MaxPercent {
		s.Percentage = s.MaxPercent
	}
}
