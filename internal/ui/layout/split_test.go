package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSplit_Clamping(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		want       float64
	}{
		{"below_min", 5, 10},
		{"above_max", 99, 95},
		{"within_bounds", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSplit(tt.percentage, true)
			assert.Equal(t, tt.want, s.Percentage)
		})
	}
}

func TestSplit_Apply_Vertical(t *testing.T) {
	s := NewSplit(30, true)
	box := NewBox(Rect(0, 0, 100, 100))

	main, secondary := s.Apply(box)

	assert.Equal(t, 70, main.R.Dy())
	assert.Equal(t, 0, main.R.Min.Y)
	assert.Equal(t, 30, secondary.R.Dy())
	assert.Equal(t, 70, secondary.R.Min.Y)
}

func TestSplit_Apply_Horizontal(t *testing.T) {
	s := NewSplit(40, false)
	box := NewBox(Rect(0, 0, 100, 50))

	main, secondary := s.Apply(box)

	assert.Equal(t, 60, main.R.Dx())
	assert.Equal(t, 0, main.R.Min.X)
	assert.Equal(t, 40, secondary.R.Dx())
	assert.Equal(t, 60, secondary.R.Min.X)
}

func TestSplit_DragTo(t *testing.T) {
	s := NewSplit(50, true)
	box := NewBox(Rect(0, 0, 100, 100))

	changed := s.DragTo(box, 50, 70)

	assert.True(t, changed)
	assert.Equal(t, float64(30), s.Percentage)

	// Dragging to the same place again is not a change.
	assert.False(t, s.DragTo(box, 50, 70))
}

func TestSplit_ExpandShrink(t *testing.T) {
	s := NewSplit(50, false)

	s.Expand(10)
	assert.Equal(t, float64(60), s.Percentage)

	s.Shrink(70)
	assert.Equal(t, float64(10), s.Percentage, "shrink clamps at MinPercent")
}

func TestBox_V_MixedConstraints(t *testing.T) {
	box := NewBox(Rect(0, 0, 80, 24))

	rows := box.V(Fixed(1), Fill(1), Fixed(2))

	assert.Equal(t, 1, rows[0].R.Dy())
	assert.Equal(t, 21, rows[1].R.Dy())
	assert.Equal(t, 2, rows[2].R.Dy())
	assert.Equal(t, 22, rows[2].R.Min.Y)
}

func TestBox_H_FillWeights(t *testing.T) {
	box := NewBox(Rect(0, 0, 90, 10))

	cols := box.H(Fill(1), Fill(2))

	assert.Equal(t, 30, cols[0].R.Dx())
	assert.Equal(t, 60, cols[1].R.Dx())
	assert.Equal(t, 30, cols[1].R.Min.X)
}

func TestBox_Divide_Deterministic(t *testing.T) {
	box := NewBox(Rect(0, 0, 7, 7))

	a := box.V(Fill(1), Fill(1), Fill(1))
	b := box.V(Fill(1), Fill(1), Fill(1))

	assert.Equal(t, a, b)
	total := a[0].R.Dy() + a[1].R.Dy() + a[2].R.Dy()
	assert.Equal(t, 7, total, "fills cover the whole axis")
}

func TestBox_Divide_Oversubscribed(t *testing.T) {
	box := NewBox(Rect(0, 0, 10, 3))

	rows := box.V(Fixed(2), Fixed(2), Fixed(2))

	assert.Equal(t, 2, rows[0].R.Dy())
	assert.Equal(t, 1, rows[1].R.Dy())
	assert.Equal(t, 0, rows[2].R.Dy())
}
