package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Segment is a run of text under one style. Components compose lines
// out of segments so styling stays declarative until the final render.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

func (s Segment) String() string {
	return s.Style.Render(s.Text)
}

// Line renders segments into one styled line.
func Line(segments ...Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString(seg.String())
	}
	return sb.String()
}
