package physics

// Delegate is an insertion-ordered list of handlers taking one argument.
type Delegate[T any] struct {
	handlers []func(T)
}

// Add registers fn. Handlers run in the order they were added.
func (d *Delegate[T]) Add(fn func(T)) {
	if fn == nil {
		return
	}
	d.handlers = append(d.handlers, fn)
}

// Call invokes every handler with v.
func (d *Delegate[T]) Call(v T) {
	for _, fn := range d.handlers {
		fn(v)
	}
}

func (d *Delegate[T]) Len() int {
	return len(d.handlers)
}

func (d *Delegate[T]) Clear() {
	d.handlers = nil
}

// Signal is a Delegate without payload.
type Signal struct {
	handlers []func()
}

func (s *Signal) Add(fn func()) {
	if fn == nil {
		return
	}
	s.handlers = append(s.handlers, fn)
}

func (s *Signal) Call() {
	for _, fn := range s.handlers {
		fn()
	}
}

func (s *Signal) Len() int {
	return len(s.handlers)
}

func (s *Signal) Clear() {
	s.handlers = nil
}
