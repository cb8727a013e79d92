package term

import (
	"bytes"
	"unicode/utf8"

	"github.com/bloodnighttw/yap/internal/runtime"
)

var pasteEnd = []byte("\x1b[201~")

// decodeEvent parses one input event from the head of p and reports
// how many bytes it consumed. A nil event with n > 0 means the bytes
// were recognized but carry nothing to deliver (unsupported
// sequences). n is never 0 for non-empty input, so the reader always
// makes progress.
func decodeEvent(p []byte) (runtime.Event, int) {
	if len(p) == 0 {
		return nil, 0
	}

	b := p[0]
	switch {
	case b == 0x1b:
		return decodeEscape(p)
	case b == '\r' || b == '\n':
		return runtime.KeyEvent{Code: runtime.KeyEnter}, 1
	case b == '\t':
		return runtime.KeyEvent{Code: runtime.KeyTab}, 1
	case b == 0x7f || b == 0x08:
		return runtime.KeyEvent{Code: runtime.KeyBackspace}, 1
	case b < 0x20:
		// Remaining C0 controls are ctrl+letter.
		return runtime.KeyEvent{Rune: rune('a' + b - 1), Mods: runtime.ModCtrl}, 1
	}

	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size <= 1 {
		return nil, 1
	}
	return runtime.KeyEvent{Rune: r}, size
}

func decodeEscape(p []byte) (runtime.Event, int) {
	if len(p) == 1 {
		return runtime.KeyEvent{Code: runtime.KeyEsc}, 1
	}

	switch p[1] {
	case '[':
		return decodeCSI(p)
	case 'O':
		return decodeSS3(p)
	}

	// ESC prefixing an ordinary key means Alt was held.
	ev, n := decodeEvent(p[1:])
	if key, ok := ev.(runtime.KeyEvent); ok {
		key.Mods |= runtime.ModAlt
		return key, n + 1
	}
	return ev, n + 1
}

// decodeCSI handles sequences of the form ESC [ params final, covering
// cursor keys, the tilde function keys, SGR mouse reports and
// bracketed paste.
func decodeCSI(p []byte) (runtime.Event, int) {
	i := 2
	for i < len(p) && !isCSIFinal(p[i]) {
		i++
	}
	if i >= len(p) {
		// Truncated sequence; swallow what we have.
		return nil, len(p)
	}
	final := p[i]
	params, sgr := parseParams(p[2:i])
	n := i + 1

	if sgr && (final == 'M' || final == 'm') {
		return decodeSGRMouse(params, final == 'm'), n
	}

	mods := runtime.Modifiers(0)
	if len(params) >= 2 && params[1] > 0 {
		mods = decodeModParam(params[1])
	}

	switch final {
	case 'A':
		return runtime.KeyEvent{Code: runtime.KeyUp, Mods: mods}, n
	case 'B':
		return runtime.KeyEvent{Code: runtime.KeyDown, Mods: mods}, n
	case 'C':
		return runtime.KeyEvent{Code: runtime.KeyRight, Mods: mods}, n
	case 'D':
		return runtime.KeyEvent{Code: runtime.KeyLeft, Mods: mods}, n
	case 'H':
		return runtime.KeyEvent{Code: runtime.KeyHome, Mods: mods}, n
	case 'F':
		return runtime.KeyEvent{Code: runtime.KeyEnd, Mods: mods}, n
	case 'Z':
		return runtime.KeyEvent{Code: runtime.KeyTab, Mods: runtime.ModShift}, n
	case '~':
		if len(params) == 0 {
			return nil, n
		}
		switch params[0] {
		case 1, 7:
			return runtime.KeyEvent{Code: runtime.KeyHome, Mods: mods}, n
		case 2:
			return runtime.KeyEvent{Code: runtime.KeyInsert, Mods: mods}, n
		case 3:
			return runtime.KeyEvent{Code: runtime.KeyDelete, Mods: mods}, n
		case 4, 8:
			return runtime.KeyEvent{Code: runtime.KeyEnd, Mods: mods}, n
		case 5:
			return runtime.KeyEvent{Code: runtime.KeyPgUp, Mods: mods}, n
		case 6:
			return runtime.KeyEvent{Code: runtime.KeyPgDown, Mods: mods}, n
		case 200:
			return decodePaste(p[n:], n)
		}
	}
	return nil, n
}

// decodePaste collects bracketed-paste text up to the closing
// sequence. rest starts right after ESC[200~; prefix is how many bytes
// preceded it.
func decodePaste(rest []byte, prefix int) (runtime.Event, int) {
	if idx := bytes.Index(rest, pasteEnd); idx >= 0 {
		return runtime.PasteEvent{Text: string(rest[:idx])}, prefix + idx + len(pasteEnd)
	}
	return runtime.PasteEvent{Text: string(rest)}, prefix + len(rest)
}

func decodeSS3(p []byte) (runtime.Event, int) {
	if len(p) < 3 {
		return nil, len(p)
	}
	switch p[2] {
	case 'A':
		return runtime.KeyEvent{Code: runtime.KeyUp}, 3
	case 'B':
		return runtime.KeyEvent{Code: runtime.KeyDown}, 3
	case 'C':
		return runtime.KeyEvent{Code: runtime.KeyRight}, 3
	case 'D':
		return runtime.KeyEvent{Code: runtime.KeyLeft}, 3
	case 'H':
		return runtime.KeyEvent{Code: runtime.KeyHome}, 3
	case 'F':
		return runtime.KeyEvent{Code: runtime.KeyEnd}, 3
	}
	return nil, 3
}

// decodeSGRMouse interprets an SGR (1006) mouse report: button-and-
// modifier bits, then 1-based column and row.
func decodeSGRMouse(params []int, release bool) runtime.Event {
	if len(params) < 3 {
		return nil
	}
	cb, x, y := params[0], params[1]-1, params[2]-1

	var mods runtime.Modifiers
	if cb&4 != 0 {
		mods |= runtime.ModShift
	}
	if cb&8 != 0 {
		mods |= runtime.ModAlt
	}
	if cb&16 != 0 {
		mods |= runtime.ModCtrl
	}

	var button runtime.MouseButton
	switch {
	case cb&64 != 0:
		if cb&1 != 0 {
			button = runtime.MouseWheelDown
		} else {
			button = runtime.MouseWheelUp
		}
	case release:
		button = runtime.MouseRelease
	case cb&32 != 0:
		button = runtime.MouseMotion
	default:
		switch cb & 3 {
		case 0:
			button = runtime.MouseLeft
		case 1:
			button = runtime.MouseMiddle
		case 2:
			button = runtime.MouseRight
		default:
			button = runtime.MouseMotion
		}
	}

	return runtime.MouseEvent{Button: button, X: x, Y: y, Mods: mods}
}

// parseParams splits semicolon-separated numeric parameters and notes
// whether the sequence used the SGR '<' introducer.
func parseParams(p []byte) ([]int, bool) {
	sgr := false
	if len(p) > 0 && p[0] == '<' {
		sgr = true
		p = p[1:]
	}
	if len(p) == 0 {
		return nil, sgr
	}
	var params []int
	cur := 0
	for _, b := range p {
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
		case b == ';':
			params = append(params, cur)
			cur = 0
		}
	}
	params = append(params, cur)
	return params, sgr
}

// decodeModParam maps the xterm modifier parameter (value minus one is
// a bitmask: 1 shift, 2 alt, 4 ctrl).
func decodeModParam(v int) runtime.Modifiers {
	var mods runtime.Modifiers
	bits := v - 1
	if bits&1 != 0 {
		mods |= runtime.ModShift
	}
	if bits&2 != 0 {
		mods |= runtime.ModAlt
	}
	if bits&4 != 0 {
		mods |= runtime.ModCtrl
	}
	return mods
}

func isCSIFinal(b byte) bool {
	return b >= '@' && b <= '~' && b != ';' && b != '<'
}
