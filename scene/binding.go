package scene

import "sync"

// Binding is a write-once handle to an object that finishes loading asynchronously
// Resolve may be called from any goroutine, Poll belongs to the scene owner
type Binding struct {
	ch   chan *Object
	done chan struct{}
	once sync.Once

	// Owner-side cache, read and written only by Poll
	obj *Object
}

// NewBinding creates an unresolved binding
func NewBinding() *Binding {
	return &Binding{
		ch:   make(chan *Object, 1),
		done: make(chan struct{}),
	}
}

// Resolve delivers the loaded object, later calls are ignored
// Returns false if the binding was already resolved
func (b *Binding) Resolve(obj *Object) bool {
	resolved := false
	b.once.Do(func() {
		b.ch <- obj
		close(b.done)
		resolved = true
	})
	return resolved
}

// Poll returns the bound object without blocking
func (b *Binding) Poll() (*Object, bool) {
	if b.obj != nil {
		return b.obj, true
	}
	select {
	case obj := <-b.ch:
		b.obj = obj
	default:
	}
	return b.obj, b.obj != nil
}

// Done is closed once Resolve has been called
func (b *Binding) Done() <-chan struct{} {
	return b.done
}
