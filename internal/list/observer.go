package list

// registry holds observer callbacks in registration order.
type registry struct {
	next int
	subs []subscriber
}

type subscriber struct {
	handle int
	fn     func()
}

func newRegistry() *registry {
	return &registry{next: 1}
}

func (r *registry) add(fn func()) int {
	h := r.next
	r.next++
	r.subs = append(r.subs, subscriber{handle: h, fn: fn})
	return h
}

func (r *registry) remove(handle int) {
	for i, s := range r.subs {
		if s.handle == handle {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return
		}
	}
}

// notify invokes a snapshot of the current callbacks. Subscriptions added or
// removed by a callback take effect on the next notification, not this one.
func (r *registry) notify() {
	snapshot := make([]func(), len(r.subs))
	for i, s := range r.subs {
		snapshot[i] = s.fn
	}
	for _, fn := range snapshot {
		fn()
	}
}
