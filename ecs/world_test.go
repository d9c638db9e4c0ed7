package ecs

import "testing"

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				e := ents[c.destroyIndex]
				if !DestroyEntity(w, e) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if DestroyEntity(w, e) {
					t.Fatalf("DestroyEntity should refuse a second request in the same tick")
				}
				if !IsAlive(w, e) {
					t.Fatalf("entity should stay alive until Refresh")
				}
				Refresh(w)
				if IsAlive(w, e) {
					t.Fatalf("entity should not be alive after Refresh")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after refresh, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestRecycledSlotInvalidatesOldHandle(t *testing.T) {
	w := NewWorld()
	kind := NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)
	Refresh(w)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got id %d want %d", fresh.id(), old.id())
	}
	if err := Add(w, fresh, kind, intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle must not resolve after slot reuse")
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("stale handle must not reach the new component")
	}
	if v, ok := Get(w, fresh, kind); !ok || *v != 2 {
		t.Fatalf("expected fresh component 2, got %v ok=%v", v, ok)
	}
}

type destroyProbe struct {
	name string
	log  *[]string
}

func (d *destroyProbe) Destroy() {
	*d.log = append(*d.log, d.name)
}

func TestRefreshRunsDestroyHooksInReverseOrder(t *testing.T) {
	w := NewWorld()
	first := NewComponentKind[destroyProbe]()
	second := NewComponentKind[destroyProbe]()
	third := NewComponentKind[destroyProbe]()

	var log []string
	e := CreateEntity(w)
	for _, step := range []struct {
		kind ComponentKind[destroyProbe]
		name string
	}{{first, "physics"}, {second, "block"}, {third, "label"}} {
		if err := Add(w, e, step.kind, &destroyProbe{name: step.name, log: &log}); err != nil {
			t.Fatal(err)
		}
	}

	DestroyEntity(w, e)
	if len(log) != 0 {
		t.Fatalf("hooks must not run before Refresh, got %v", log)
	}
	Refresh(w)

	want := []string{"label", "block", "physics"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
}

type chainProbe struct {
	w      *World
	target Entity
}

func (c *chainProbe) Destroy() {
	DestroyEntity(c.w, c.target)
}

func TestRefreshDrainsCascadingDestroys(t *testing.T) {
	w := NewWorld()
	kind := NewComponentKind[chainProbe]()

	a := CreateEntity(w)
	b := CreateEntity(w)
	if err := Add(w, a, kind, &chainProbe{w: w, target: b}); err != nil {
		t.Fatal(err)
	}

	DestroyEntity(w, a)
	Refresh(w)

	if IsAlive(w, a) || IsAlive(w, b) {
		t.Fatalf("expected both entities removed, a=%v b=%v", IsAlive(w, a), IsAlive(w, b))
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := NewComponent[int]()
	h2 := NewComponent[string]()
	h3 := NewComponent[float64]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if Count(w, h2.Kind()) != 2 {
					t.Fatalf("expected count 2, got %d", Count(w, h2.Kind()))
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name:  "add_float_and_remove",
			setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
			check: func(t *testing.T) {
				if _, ok := Get(w, e1, h3.Kind()); !ok {
					t.Fatalf("expected float present")
				}
			},
			teardown: func() bool { return Remove(w, e1, h3.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	t.Run("add_rejects_nil_and_dead", func(t *testing.T) {
		if err := Add[int](w, e1, h1.Kind(), nil); err != ErrNilComponent {
			t.Fatalf("expected ErrNilComponent, got %v", err)
		}
		dead := CreateEntity(w)
		DestroyEntity(w, dead)
		Refresh(w)
		if err := Add(w, dead, h1.Kind(), intPtr(1)); err != ErrEntityNotAlive {
			t.Fatalf("expected ErrEntityNotAlive, got %v", err)
		}
	})
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := NewComponentKind[int]()
				kb := NewComponentKind[int]()
				kc := NewComponentKind[int]()

				for _, add := range []func() error{
					func() error { return Add(w, e1, ka, intPtr(1)) },
					func() error { return Add(w, e2, ka, intPtr(2)) },
					func() error { return Add(w, e2, kb, intPtr(3)) },
					func() error { return Add(w, e2, kc, intPtr(5)) },
					func() error { return Add(w, e3, kb, intPtr(4)) },
				} {
					if err := add(); err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := NewComponentKind[int]()
				kb := NewComponentKind[int]()
				kc := NewComponentKind[int]()

				_ = Add(w, e, ka, intPtr(1))
				_ = Add(w, e, kb, intPtr(2))
				_ = Add(w, e, kc, intPtr(3))

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}
				Refresh(w)

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := NewComponentKind[int]()
				kb := NewComponentKind[int]()
				kc := NewComponentKind[int]()

				_ = Add(w, e, ka, intPtr(1))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(w *World, dt float64) {
	*r.log = append(*r.log, r.name)
}

func TestWorldUpdateRunsSystemsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(recordSystem{name: "physics", log: &log})
	w.AddSystem(recordSystem{name: "player", log: &log})
	w.AddSystem(nil)

	w.Events().Push(Event{Type: "sound"})
	w.Update(1)

	if len(log) != 2 || log[0] != "physics" || log[1] != "player" {
		t.Fatalf("unexpected system order %v", log)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected events flushed after update")
	}
}

func TestSystemFuncSeesEventsOfEarlierSystems(t *testing.T) {
	w := NewWorld()
	var seen []Event
	w.AddSystem(SystemFunc(func(w *World, _ float64) {
		Emit(w, "sound", "jump")
		Emit(w, "level", 1)
	}))
	w.AddSystem(SystemFunc(func(w *World, _ float64) {
		seen = append(seen, w.Events().Drain()...)
	}))
	w.Update(1)

	if len(seen) != 2 || seen[0].Data != "jump" || seen[1].Type != "level" {
		t.Fatalf("unexpected events %+v", seen)
	}
	Emit(nil, "sound", "ignored")
}

func TestEntityString(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	DestroyEntity(w, first)
	Refresh(w)
	second := CreateEntity(w)

	if first.String() == second.String() {
		t.Fatalf("recycled handle renders like the old one: %s", second)
	}
	if got := Entity(0).String(); got != "0.0" {
		t.Fatalf("zero entity = %q", got)
	}
}
