package runtime

import (
	"fmt"
	"strings"
	"time"
)

// Event is a raw input occurrence delivered to components for
// interpretation. Unlike actions, events carry no instruction; a
// component reacts by returning an Action (or nil) from HandleEvent.
type Event interface {
	isEvent()
}

// KeyCode identifies a non-printable key. Printable input arrives as
// KeyRune with the rune set.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyDelete
	KeyInsert
)

var keyCodeNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyEsc:       "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
}

// Modifiers is a bitmask of modifier keys held during a key press.
type Modifiers int

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// KeyEvent is a single key press.
type KeyEvent struct {
	Code KeyCode
	Rune rune
	Mods Modifiers
}

// String renders the key in keybinding notation, e.g. "q", "ctrl+z",
// "alt+enter". This is the form the config keybinding table uses.
func (k KeyEvent) String() string {
	var sb strings.Builder
	if k.Mods&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if k.Mods&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if k.Mods&ModShift != 0 && k.Code != KeyRune {
		sb.WriteString("shift+")
	}
	if name, ok := keyCodeNames[k.Code]; ok {
		sb.WriteString(name)
	} else {
		sb.WriteRune(k.Rune)
	}
	return sb.String()
}

// MouseButton identifies which button (or wheel direction) a mouse
// event refers to.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseRelease
	MouseMotion
)

// MouseEvent is a single mouse action at a cell position.
type MouseEvent struct {
	Button MouseButton
	X      int
	Y      int
	Mods   Modifiers
}

// ResizeEvent reports new terminal dimensions.
type ResizeEvent struct {
	Width  int
	Height int
}

// PasteEvent carries bracketed-paste text as one unit.
type PasteEvent struct {
	Text string
}

// TickEvent is emitted by the event source at a fixed interval when
// ticking is enabled. The runtime itself never generates ticks; a
// source that does not tick keeps the loop fully idle.
type TickEvent struct {
	Time time.Time
}

func (KeyEvent) isEvent()    {}
func (MouseEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
func (PasteEvent) isEvent()  {}
func (TickEvent) isEvent()   {}

func (e ResizeEvent) String() string {
	return fmt.Sprintf("Resize(%d, %d)", e.Width, e.Height)
}
