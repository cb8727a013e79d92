package ui

import (
	"github.com/mattn/go-runewidth"

	"github.com/bloodnighttw/yap/internal/runtime"
)

// lineEditor is the single-line editing core shared by the Input and
// Filter components: a rune buffer with a cursor, driven by key
// events.
type lineEditor struct {
	runes  []rune
	cursor int // rune index
}

func (e *lineEditor) value() string {
	return string(e.runes)
}

// cursorColumn is the display column of the cursor, accounting for
// wide runes.
func (e *lineEditor) cursorColumn() int {
	return runewidth.StringWidth(string(e.runes[:e.cursor]))
}

// handleKey applies one key press and reports whether the buffer or
// cursor changed.
func (e *lineEditor) handleKey(key runtime.KeyEvent) bool {
	if key.Mods&(runtime.ModCtrl|runtime.ModAlt) != 0 {
		return false
	}
	switch key.Code {
	case runtime.KeyRune:
		e.runes = append(e.runes[:e.cursor], append([]rune{key.Rune}, e.runes[e.cursor:]...)...)
		e.cursor++
		return true
	case runtime.KeyBackspace:
		if e.cursor == 0 {
			return false
		}
		e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
		e.cursor--
		return true
	case runtime.KeyDelete:
		if e.cursor >= len(e.runes) {
			return false
		}
		e.runes = append(e.runes[:e.cursor], e.runes[e.cursor+1:]...)
		return true
	case runtime.KeyLeft:
		if e.cursor == 0 {
			return false
		}
		e.cursor--
		return true
	case runtime.KeyRight:
		if e.cursor >= len(e.runes) {
			return false
		}
		e.cursor++
		return true
	case runtime.KeyHome:
		if e.cursor == 0 {
			return false
		}
		e.cursor = 0
		return true
	case runtime.KeyEnd:
		if e.cursor == len(e.runes) {
			return false
		}
		e.cursor = len(e.runes)
		return true
	}
	return false
}
