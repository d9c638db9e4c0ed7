package component

import "github.com/milk9111/blockdrop/ecs"

// CountdownTicks is ten seconds at 60 ticks per second.
const CountdownTicks = 600

// Countdown is the level timer. It starts on the first pickup and restarts
// the level when it runs out.
type Countdown struct {
	Duration  float64
	Remaining float64
	running   bool
}

var CountdownComponent = ecs.NewComponent[Countdown]()

func NewCountdown(duration float64) *Countdown {
	if duration <= 0 {
		duration = CountdownTicks
	}
	return &Countdown{Duration: duration, Remaining: duration}
}

// Start begins the countdown unless it is already running.
func (c *Countdown) Start() {
	if c.running {
		return
	}
	c.running = true
	c.Remaining = c.Duration
}

// Refresh resets the remaining time to the full duration.
func (c *Countdown) Refresh() {
	c.Remaining = c.Duration
}

func (c *Countdown) Stop()         { c.running = false }
func (c *Countdown) Running() bool { return c.running }

// Tick advances the countdown and reports whether it expired on this call.
func (c *Countdown) Tick(dt float64) bool {
	if !c.running {
		return false
	}
	c.Remaining -= dt
	if c.Remaining > 0 {
		return false
	}
	c.Remaining = 0
	c.running = false
	return true
}

func StartCountdown(w *ecs.World) {
	if c, ok := countdown(w); ok {
		c.Start()
	}
}

func RefreshCountdown(w *ecs.World) {
	if c, ok := countdown(w); ok {
		c.Refresh()
	}
}

func countdown(w *ecs.World) (*Countdown, bool) {
	e, ok := ecs.First(w, CountdownComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, CountdownComponent.Kind())
}
