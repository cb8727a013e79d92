package ui

import "sync"

// Query is the filter text shared between the Filter editor and the
// Requests list. It lives outside the component tree, so both sides
// access it through their own reference with plain locking; the tree
// itself stays single-owner.
type Query struct {
	mu   sync.RWMutex
	text string
}

func NewQuery() *Query {
	return &Query{}
}

func (q *Query) Set(text string) {
	q.mu.Lock()
	q.text = text
	q.mu.Unlock()
}

func (q *Query) Get() string {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.text
}
