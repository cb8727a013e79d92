package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEvent_String(t *testing.T) {
	tests := []struct {
		key  KeyEvent
		want string
	}{
		{KeyEvent{Rune: 'q'}, "q"},
		{KeyEvent{Rune: 'Q', Mods: ModShift}, "Q"},
		{KeyEvent{Rune: 'z', Mods: ModCtrl}, "ctrl+z"},
		{KeyEvent{Rune: 'x', Mods: ModAlt}, "alt+x"},
		{KeyEvent{Rune: 'c', Mods: ModCtrl | ModAlt}, "ctrl+alt+c"},
		{KeyEvent{Code: KeyEnter}, "enter"},
		{KeyEvent{Code: KeyTab}, "tab"},
		{KeyEvent{Code: KeyTab, Mods: ModShift}, "shift+tab"},
		{KeyEvent{Code: KeyEsc}, "esc"},
		{KeyEvent{Code: KeyUp, Mods: ModCtrl}, "ctrl+up"},
		{KeyEvent{Code: KeyPgDown}, "pgdown"},
		{KeyEvent{Rune: '+'}, "+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.key.String())
	}
}
