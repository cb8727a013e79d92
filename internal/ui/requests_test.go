package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodnighttw/yap/internal/proxy"
	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/test"
)

func seededStore(uris ...string) *proxy.Store {
	store := proxy.NewStore()
	for _, uri := range uris {
		store.Add(proxy.Request{Method: "GET", URI: uri, Time: time.Now()})
	}
	return store
}

func uris(reqs []proxy.Request) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.URI
	}
	return out
}

func TestRequests_VisibleNewestFirst(t *testing.T) {
	store := seededStore("/first", "/second", "/third")
	r := NewRequests(store, NewQuery())

	assert.Equal(t, []string{"/third", "/second", "/first"}, uris(r.visible()))
}

func TestRequests_FuzzyFilterNarrowsList(t *testing.T) {
	store := seededStore("/api/users", "/static/logo.png", "/api/orders")
	q := NewQuery()
	r := NewRequests(store, q)

	q.Set("api")
	got := uris(r.visible())

	assert.Len(t, got, 2)
	assert.Contains(t, got, "/api/users")
	assert.Contains(t, got, "/api/orders")
}

func TestRequests_EmptyQueryShowsEverything(t *testing.T) {
	store := seededStore("/a", "/b")
	r := NewRequests(store, NewQuery())

	assert.Len(t, r.visible(), 2)
}

func TestRequests_WheelScrolls(t *testing.T) {
	r := NewRequests(proxy.NewStore(), NewQuery())

	act, err := r.HandleEvent(runtime.MouseEvent{Button: runtime.MouseWheelDown})
	require.NoError(t, err)
	assert.Equal(t, runtime.ActionRender{}, act)
	assert.Equal(t, 1, r.offset)

	act, err = r.HandleEvent(runtime.MouseEvent{Button: runtime.MouseWheelUp})
	require.NoError(t, err)
	assert.Equal(t, runtime.ActionRender{}, act)
	assert.Equal(t, 0, r.offset)

	act, err = r.HandleEvent(runtime.MouseEvent{Button: runtime.MouseWheelUp})
	require.NoError(t, err)
	assert.Nil(t, act, "scrolling above the top is a no-op")
}

func TestRequests_RenderClampsOffset(t *testing.T) {
	store := seededStore("/one", "/two")
	r := NewRequests(store, NewQuery())
	r.offset = 99

	_, err := test.Render(r, 40, 10)

	require.NoError(t, err)
	assert.LessOrEqual(t, r.offset, 2)
}

func TestRequests_TinyAreaRendersNothing(t *testing.T) {
	r := NewRequests(proxy.NewStore(), NewQuery())

	out, err := test.Render(r, 3, 2)

	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))
}
