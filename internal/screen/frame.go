package screen

import "github.com/charmbracelet/x/cellbuf"

// Position is a cell coordinate on the frame.
type Position struct {
	X int
	Y int
}

// Frame is the drawing surface handed to a component's Render call.
// It wraps a cell buffer for the full terminal area; components write
// styled content into sub-rectangles and may place the hardware
// cursor. A frame is built fresh for every draw and carries no state
// across frames.
type Frame struct {
	buf       *cellbuf.Buffer
	width     int
	height    int
	cursor    Position
	hasCursor bool
}

// NewFrame allocates an empty frame of the given dimensions.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{
		buf:    cellbuf.NewBuffer(width, height),
		width:  width,
		height: height,
	}
}

// Area is the full frame rectangle.
func (f *Frame) Area() cellbuf.Rectangle {
	return cellbuf.Rect(0, 0, f.width, f.height)
}

// SetContent writes content into the given rectangle. The content may
// span multiple lines and contain ANSI styling; it is clipped to the
// rectangle.
func (f *Frame) SetContent(content string, area cellbuf.Rectangle) {
	cellbuf.SetContentRect(f.buf, content, area)
}

// SetCursor places the hardware cursor. Only the last caller per frame
// wins; frames start with the cursor hidden.
func (f *Frame) SetCursor(x, y int) {
	f.cursor = Position{X: x, Y: y}
	f.hasCursor = true
}

// Cursor reports the requested cursor position, if any component set
// one this frame.
func (f *Frame) Cursor() (Position, bool) {
	return f.cursor, f.hasCursor
}

// Render flattens the frame into a styled string, one line per row.
func (f *Frame) Render() string {
	return cellbuf.Render(f.buf)
}
