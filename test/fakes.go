package test

import (
	"sync"

	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/screen"
)

// Surface is an in-memory runtime.Surface that records every call, for
// asserting on draw counts, suspend handling and release idempotence.
type Surface struct {
	mu sync.Mutex

	Width  int
	Height int

	EnterCalls   int
	ExitCalls    int
	SuspendCalls int
	ResumeCalls  int
	Frames       []*screen.Frame

	entered bool
}

// NewSurface builds a surface reporting the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{Width: width, Height: height}
}

func (s *Surface) Enter() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.entered {
		s.EnterCalls++
		s.entered = true
	}
	return nil
}

func (s *Surface) Exit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entered {
		s.ExitCalls++
		s.entered = false
	}
	return nil
}

func (s *Surface) Suspend() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SuspendCalls++
	return nil
}

func (s *Surface) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ResumeCalls++
	return nil
}

func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Width, s.Height
}

func (s *Surface) Draw(f *screen.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Frames = append(s.Frames, f)
	return nil
}

// DrawCount reports how many frames were flushed.
func (s *Surface) DrawCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Frames)
}

// LastFrame returns the most recently flushed frame, or nil.
func (s *Surface) LastFrame() *screen.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Frames) == 0 {
		return nil
	}
	return s.Frames[len(s.Frames)-1]
}

// SuspendCount reports how many times Suspend ran.
func (s *Surface) SuspendCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.SuspendCalls
}

// ResumeCount reports how many times Resume ran.
func (s *Surface) ResumeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ResumeCalls
}

// Resize changes the size reported by Size.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Width, s.Height = width, height
}

// Source is a scripted runtime.EventSource.
type Source struct {
	ch        chan runtime.Event
	closeOnce sync.Once
}

func NewSource() *Source {
	return &Source{ch: make(chan runtime.Event)}
}

func (s *Source) Events() <-chan runtime.Event {
	return s.ch
}

// Push delivers one event, blocking until the loop takes it.
func (s *Source) Push(ev runtime.Event) {
	s.ch <- ev
}

// Close ends the stream, which quits the runtime.
func (s *Source) Close() {
	s.closeOnce.Do(func() { close(s.ch) })
}
