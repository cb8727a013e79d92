package runtime

// Updater is the capability a component receives in Mounted and the
// only sanctioned way to request work after that point, including from
// background goroutines. It is a small value, safe to copy and to
// share between goroutines, and carries no component identity.
//
// Calling an Updater never blocks and never fails: once the runtime
// has stopped consuming, posts are silently dropped. The zero value is
// also a no-op, so components may call it before mounting.
type Updater struct {
	q *actionQueue
}

// Update enqueues a single ActionRender.
func (u Updater) Update() {
	u.Post(ActionRender{})
}

// Post enqueues an arbitrary action.
func (u Updater) Post(a Action) {
	if u.q == nil || a == nil {
		return
	}
	u.q.push(a)
}
