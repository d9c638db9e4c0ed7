package ecs

// World owns entities, components, system order and the event queue.
//
// Destruction is deferred: DestroyEntity only marks the entity, so handles stay
// valid until Refresh runs at the end of the tick. Refresh calls Destroy on the
// entity's components in reverse insertion order, then recycles the slot.
type World struct {
	entities  entityStore
	stores    map[ComponentID]*SparseSet
	kinds     map[Entity][]ComponentID
	pending   []Entity
	doomed    map[Entity]struct{}
	scheduler scheduler
	events    EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[ComponentID]*SparseSet),
		kinds:  make(map[Entity][]ComponentID),
		doomed: make(map[Entity]struct{}),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity requests removal of e at the end of the tick. It returns false
// when e is not alive or already scheduled.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	if _, ok := w.doomed[e]; ok {
		return false
	}
	w.doomed[e] = struct{}{}
	w.pending = append(w.pending, e)
	return true
}

// IsAlive reports whether an entity handle still resolves.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// IsDoomed reports whether e was scheduled for destruction this tick.
func IsDoomed(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	_, ok := w.doomed[e]
	return ok
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i, alive := range w.entities.alive {
		if alive {
			out = append(out, makeEntity(entityID(i+1), w.entities.gens[i]))
		}
	}
	return out
}

// Refresh removes every entity scheduled with DestroyEntity. Destroy hooks may
// schedule further entities; those are removed in the same call.
func Refresh(w *World) {
	if w == nil {
		return
	}
	for len(w.pending) > 0 {
		batch := w.pending
		w.pending = nil
		for _, e := range batch {
			w.release(e)
		}
	}
}

func (w *World) release(e Entity) {
	kinds := w.kinds[e]
	for i := len(kinds) - 1; i >= 0; i-- {
		store := w.stores[kinds[i]]
		if d, ok := store.Get(e).(Destroyer); ok {
			d.Destroy()
		}
	}
	for _, id := range kinds {
		w.stores[id].Remove(e)
	}
	delete(w.kinds, e)
	delete(w.doomed, e)
	w.entities.destroy(e)
}

// Clear destroys every entity immediately, running destroy hooks.
func Clear(w *World) {
	if w == nil {
		return
	}
	for _, e := range Entities(w) {
		DestroyEntity(w, e)
	}
	Refresh(w)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.add(s)
}

// Update runs all systems once, removes destroyed entities and drops any
// events nobody drained.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.scheduler.update(w, dt)
	Refresh(w)
	w.events.items = nil
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id ComponentID, create bool) *SparseSet {
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
