package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/screen"
)

var fpsStyle = lipgloss.NewStyle().Faint(true)

// Fps shows how often the tree is actually drawn. Under tickless
// rendering this stays at zero while nothing happens, which is the
// point.
type Fps struct {
	runtime.Base
	lastUpdate  time.Time
	frameCount  int
	perSecond   float64
	totalFrames uint64
}

func NewFps() *Fps {
	return &Fps{}
}

func (f *Fps) Mounted(runtime.Size, runtime.Updater) error {
	f.lastUpdate = time.Now()
	f.frameCount = 0
	return nil
}

func (f *Fps) Render(frame *screen.Frame, area cellbuf.Rectangle) error {
	f.frameCount++
	f.totalFrames++
	now := time.Now()
	if elapsed := now.Sub(f.lastUpdate).Seconds(); elapsed >= 1.0 {
		f.perSecond = float64(f.frameCount) / elapsed
		f.lastUpdate = now
		f.frameCount = 0
	}
	text := fmt.Sprintf("%.2f draws/sec, %d total", f.perSecond, f.totalFrames)
	frame.SetContent(fpsStyle.Render(text), area)
	return nil
}
