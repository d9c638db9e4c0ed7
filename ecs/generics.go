package ecs

// Add inserts or replaces the component of kind for e.
func Add[T any](w *World, e Entity, kind ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return ErrEntityNotAlive
	}
	if !kind.Valid() {
		return ErrInvalidComponentKind
	}
	if value == nil {
		return ErrNilComponent
	}
	s := w.store(kind.id, true)
	if !s.Has(e) {
		w.kinds[e] = append(w.kinds[e], kind.id)
	}
	s.Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	s := w.store(kind.id, false)
	if !s.Remove(e) {
		return false
	}
	kinds := w.kinds[e]
	for i, id := range kinds {
		if id == kind.id {
			w.kinds[e] = append(kinds[:i], kinds[i+1:]...)
			break
		}
	}
	return true
}

func Has[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.id, false).Has(e)
}

// Get returns the component of kind for e. Stale handles never resolve.
func Get[T any](w *World, e Entity, kind ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	value, ok := w.store(kind.id, false).Get(e).(*T)
	if !ok {
		return nil, false
	}
	return value, true
}

// First returns the first entity owning a component of kind.
func First[T any](w *World, kind ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s := w.store(kind.id, false)
	if s.Len() == 0 {
		return 0, false
	}
	return s.denseEntities[0], true
}

// Count returns the number of live entities owning a component of kind.
// Entities scheduled for destruction still count until Refresh.
func Count[T any](w *World, kind ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	return w.store(kind.id, false).Len()
}

// Query returns entities that own every listed kind.
func Query(w *World, ids ...ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	smallest := w.store(ids[0], false)
	for _, id := range ids[1:] {
		s := w.store(id, false)
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	if smallest.Len() == 0 {
		return nil
	}
	var out []Entity
outer:
	for _, e := range smallest.Entities() {
		for _, id := range ids {
			if !w.store(id, false).Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// ForEach visits every entity with a component of kind, in insertion order
// modulo swap-removals. Entities destroyed during iteration are skipped.
func ForEach[T any](w *World, kind ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(kind.id, false)
	for _, e := range s.Entities() {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka ComponentKind[A], kb ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range Query(w, ka.id, kb.id) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka ComponentKind[A], kb ComponentKind[B], kc ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range Query(w, ka.id, kb.id, kc.id) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}
