package ui

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/x/cellbuf"

	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/screen"
)

// AutoCounter ticks once a second from a background goroutine. The
// goroutine owns no reference into the tree: it bumps a shared atomic
// and requests a redraw through a cloned Updater. Unmount stops it.
type AutoCounter struct {
	runtime.Base
	interval time.Duration
	count    atomic.Uint64
	stop     chan struct{}
}

func NewAutoCounter() *AutoCounter {
	return &AutoCounter{interval: time.Second}
}

func (a *AutoCounter) Mounted(_ runtime.Size, up runtime.Updater) error {
	a.stop = make(chan struct{})
	go a.run(up)
	return nil
}

func (a *AutoCounter) run(up runtime.Updater) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.count.Add(1)
			up.Update()
		case <-a.stop:
			return
		}
	}
}

func (a *AutoCounter) Render(f *screen.Frame, area cellbuf.Rectangle) error {
	f.SetContent(fmt.Sprintf("uptime ticks: %d", a.count.Load()), area)
	return nil
}

// Unmount cancels the ticker goroutine; the framework does not reap
// orphaned tasks on its own.
func (a *AutoCounter) Unmount() error {
	if a.stop != nil {
		close(a.stop)
		a.stop = nil
	}
	return nil
}
