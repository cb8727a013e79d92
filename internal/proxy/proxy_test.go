package proxy

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodnighttw/yap/internal/runtime"
)

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := NewStore()
	store.Add(Request{Method: "GET", URI: "/a", Time: time.Now()})

	snap := store.Snapshot()
	snap[0].URI = "/mutated"

	assert.Equal(t, "/a", store.Snapshot()[0].URI)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	store := NewStore()
	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				store.Add(Request{Method: "GET", URI: "/x", Time: time.Now()})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, store.Len())
}

func TestServer_HandleRecordsAndEchoes(t *testing.T) {
	store := NewStore()
	s := NewServer("127.0.0.1:0", store, runtime.Updater{})

	req := httptest.NewRequest("POST", "/api/users?id=3", nil)
	rec := httptest.NewRecorder()
	s.handle(rec, req)

	require.Equal(t, 1, store.Len())
	got := store.Snapshot()[0]
	assert.Equal(t, "POST", got.Method)
	assert.Equal(t, "/api/users?id=3", got.URI)
	assert.Contains(t, rec.Body.String(), "POST")
	assert.Contains(t, rec.Body.String(), "/api/users?id=3")
}
