package bindings

import "sync"

// registry maps the Response values handed to Go callers onto native
// pointers. Native pointers never cross into Go-visible integers, which keeps
// uintptr->pointer conversions out of the package and turns a stale handle
// into a lookup miss instead of a wild pointer.
type registry[T any] struct {
	mu   sync.Mutex
	next Response
	m    map[Response]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{next: 1, m: make(map[Response]T)}
}

func (r *registry[T]) put(v T) Response {
	r.mu.Lock()
	h := r.next
	r.next++
	r.m[h] = v
	r.mu.Unlock()
	return h
}

func (r *registry[T]) get(h Response) (T, bool) {
	r.mu.Lock()
	v, ok := r.m[h]
	r.mu.Unlock()
	return v, ok
}

// take removes h and returns its value.
func (r *registry[T]) take(h Response) (T, bool) {
	r.mu.Lock()
	v, ok := r.m[h]
	if ok {
		delete(r.m, h)
	}
	r.mu.Unlock()
	return v, ok
}

func (r *registry[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.m)
}
