package runtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	q := newActionQueue()

	q.push(ActionRender{})
	q.push(ActionResize{Width: 80, Height: 24})
	q.push(ActionQuit{})

	a, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, ActionRender{}, a)

	a, _ = q.pop()
	assert.Equal(t, ActionResize{Width: 80, Height: 24}, a)

	a, _ = q.pop()
	assert.Equal(t, ActionQuit{}, a)

	_, ok = q.pop()
	assert.False(t, ok)
}

func TestQueue_PushSignalsReady(t *testing.T) {
	q := newActionQueue()

	q.push(ActionRender{})

	select {
	case <-q.readyCh():
	default:
		t.Fatal("expected ready signal after push")
	}
}

func TestQueue_SignalCoalesces(t *testing.T) {
	q := newActionQueue()

	// Many pushes, one (coalesced) signal: consumers drain by depth.
	for i := 0; i < 10; i++ {
		q.push(ActionRender{})
	}

	<-q.readyCh()
	select {
	case <-q.readyCh():
		t.Fatal("signal should coalesce, got a second one")
	default:
	}
	assert.Equal(t, 10, q.len())
}

func TestQueue_ClosedDropsPushes(t *testing.T) {
	q := newActionQueue()
	q.push(ActionRender{})
	q.close()

	q.push(ActionQuit{})

	assert.Equal(t, 0, q.len())
	_, ok := q.pop()
	assert.False(t, ok)
}

func TestQueue_ConcurrentProducersLoseNothing(t *testing.T) {
	q := newActionQueue()
	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.push(ActionCustom{Payload: [2]int{id, i}})
			}
		}(p)
	}
	wg.Wait()

	require.Equal(t, producers*perProducer, q.len())

	// Per-producer order survives interleaving.
	next := make([]int, producers)
	for {
		a, ok := q.pop()
		if !ok {
			break
		}
		pair := a.(ActionCustom).Payload.([2]int)
		assert.Equal(t, next[pair[0]], pair[1])
		next[pair[0]]++
	}
	for p := 0; p < producers; p++ {
		assert.Equal(t, perProducer, next[p])
	}
}

func TestUpdater_ZeroValueIsNoop(t *testing.T) {
	var up Updater

	assert.NotPanics(t, func() {
		up.Update()
		up.Post(ActionQuit{})
	})
}

func TestUpdater_AfterCloseIsNoop(t *testing.T) {
	q := newActionQueue()
	up := Updater{q: q}
	q.close()

	assert.NotPanics(t, func() {
		up.Update()
	})
	assert.Equal(t, 0, q.len())
}

func TestUpdater_PostEnqueues(t *testing.T) {
	q := newActionQueue()
	up := Updater{q: q}

	up.Update()
	up.Post(ActionResize{Width: 1, Height: 2})

	assert.Equal(t, 2, q.len())
	a, _ := q.pop()
	assert.Equal(t, ActionRender{}, a)
}
