package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/screen"
)

const eraseRight = termenv.CSI + "K"
const eraseBelow = termenv.CSI + "J"

// Option configures a Terminal.
type Option func(*Terminal)

// WithTick makes the terminal emit TickEvents at the given interval.
// Off by default; the runtime stays fully idle without it.
func WithTick(d time.Duration) Option {
	return func(t *Terminal) { t.tick = d }
}

// WithoutMouse disables mouse reporting.
func WithoutMouse() Option {
	return func(t *Terminal) { t.mouse = false }
}

// Terminal is the real Surface and EventSource: it owns raw mode, the
// alternate screen, mouse and paste reporting, and the goroutines that
// decode stdin and watch for window size changes.
type Terminal struct {
	in     *os.File
	out    *os.File
	output *termenv.Output

	mu      sync.Mutex
	state   *term.State
	entered bool

	mouse bool
	tick  time.Duration

	events chan runtime.Event
	reader cancelreader.CancelReader
	winch  chan os.Signal
	done   chan struct{}
	wg     sync.WaitGroup
}

// New builds a terminal over stdin/stdout.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		in:     os.Stdin,
		out:    os.Stdout,
		output: termenv.NewOutput(os.Stdout),
		mouse:  true,
		events: make(chan runtime.Event),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Events implements runtime.EventSource. The channel closes when Stop
// is called.
func (t *Terminal) Events() <-chan runtime.Event {
	return t.events
}

// Start launches the input reader, the resize watcher and, if enabled,
// the ticker. Call before the runtime runs; pair with Stop.
func (t *Terminal) Start() error {
	reader, err := cancelreader.NewReader(t.in)
	if err != nil {
		return fmt.Errorf("input reader: %w", err)
	}
	t.reader = reader

	t.winch = make(chan os.Signal, 1)
	signal.Notify(t.winch, unix.SIGWINCH)

	t.wg.Add(2)
	go t.readLoop()
	go t.winchLoop()

	if t.tick > 0 {
		t.wg.Add(1)
		go t.tickLoop()
	}
	return nil
}

// Stop cancels the readers and closes the event channel.
func (t *Terminal) Stop() {
	close(t.done)
	signal.Stop(t.winch)
	t.reader.Cancel()
	t.wg.Wait()
	if err := t.reader.Close(); err != nil {
		log.WithError(err).Debug("closing input reader")
	}
	close(t.events)
}

// Enter puts the terminal into raw mode and switches to the alternate
// screen. Idempotent.
func (t *Terminal) Enter() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.entered {
		return nil
	}
	state, err := term.MakeRaw(t.in.Fd())
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	t.state = state

	t.output.AltScreen()
	t.output.ClearScreen()
	t.output.HideCursor()
	t.output.EnableBracketedPaste()
	if t.mouse {
		t.output.EnableMouseCellMotion()
		t.output.EnableMouseExtendedMode()
	}
	t.entered = true
	return nil
}

// Exit restores the terminal to its pre-run state. Idempotent, so it
// is safe on every exit path including after an earlier Exit.
func (t *Terminal) Exit() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.entered {
		return nil
	}
	if t.mouse {
		t.output.DisableMouseExtendedMode()
		t.output.DisableMouseCellMotion()
	}
	t.output.DisableBracketedPaste()
	t.output.ShowCursor()
	t.output.ExitAltScreen()

	err := term.Restore(t.in.Fd(), t.state)
	t.entered = false
	t.state = nil
	if err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// Suspend releases the terminal and stops the process. It returns only
// after the process has been continued (fg), at which point the caller
// re-acquires the terminal via Resume.
func (t *Terminal) Suspend() error {
	if err := t.Exit(); err != nil {
		return err
	}
	if err := unix.Kill(unix.Getpid(), unix.SIGTSTP); err != nil {
		return fmt.Errorf("stop process: %w", err)
	}
	// Execution continues here on SIGCONT.
	return nil
}

// Resume re-acquires the terminal after a suspend.
func (t *Terminal) Resume() error {
	return t.Enter()
}

// Size reports the terminal dimensions, falling back to 80x24 when the
// query fails.
func (t *Terminal) Size() (int, int) {
	w, h, err := term.GetSize(t.in.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Draw writes a full frame: cursor home, every row erased to its end,
// anything below the frame cleared, then the cursor placed or hidden
// as the frame requests.
func (t *Terminal) Draw(f *screen.Frame) error {
	view := strings.ReplaceAll(f.Render(), "\r", "")
	lines := strings.Split(view, "\n")

	var sb strings.Builder
	for i, line := range lines {
		sb.WriteString(line)
		sb.WriteString(eraseRight)
		if i < len(lines)-1 {
			sb.WriteString("\r\n")
		}
	}
	sb.WriteString(eraseBelow)

	t.output.HideCursor()
	t.output.MoveCursor(1, 1)
	if _, err := io.WriteString(t.output, sb.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if pos, ok := f.Cursor(); ok {
		t.output.MoveCursor(pos.Y+1, pos.X+1)
		t.output.ShowCursor()
	}
	return nil
}

// readLoop decodes stdin into events until cancelled.
func (t *Terminal) readLoop() {
	defer t.wg.Done()
	buf := make([]byte, 256)
	for {
		n, err := t.reader.Read(buf)
		if err != nil {
			if !errors.Is(err, cancelreader.ErrCanceled) && !errors.Is(err, io.EOF) {
				log.WithError(err).Warn("input read")
			}
			return
		}
		rest := buf[:n]
		for len(rest) > 0 {
			ev, consumed := decodeEvent(rest)
			if consumed == 0 {
				break
			}
			rest = rest[consumed:]
			if ev == nil {
				continue
			}
			select {
			case t.events <- ev:
			case <-t.done:
				return
			}
		}
	}
}

// winchLoop forwards window size changes as resize events.
func (t *Terminal) winchLoop() {
	defer t.wg.Done()
	for {
		select {
		case <-t.winch:
			w, h := t.Size()
			select {
			case t.events <- runtime.ResizeEvent{Width: w, Height: h}:
			case <-t.done:
				return
			}
		case <-t.done:
			return
		}
	}
}

// tickLoop emits periodic ticks when enabled.
func (t *Terminal) tickLoop() {
	defer t.wg.Done()
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			select {
			case t.events <- runtime.TickEvent{Time: now}:
			case <-t.done:
				return
			}
		case <-t.done:
			return
		}
	}
}
