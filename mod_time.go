package mirage

import (
	"time"
)

// DefaultTickRate is the fixed simulation step positions advance by.
const DefaultTickRate = 50 * time.Millisecond

// Time tracks the frame clock and a fixed-rate tick clock. PartialTick is
// how far the current frame sits between the last tick and the next.
type Time struct {
	Time time.Time
	Dt   time.Duration

	TickRate       time.Duration
	Ticks          uint64
	TicksThisFrame int
	PartialTick    float64

	accumulator time.Duration
}

// Advance moves the clock to now and counts the ticks that elapsed.
func (t *Time) Advance(now time.Time) {
	t.Dt = now.Sub(t.Time)
	if t.Dt < 0 {
		t.Dt = 0
	}
	t.Time = now

	rate := t.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	t.accumulator += t.Dt
	t.TicksThisFrame = 0
	for t.accumulator >= rate {
		t.accumulator -= rate
		t.Ticks++
		t.TicksThisFrame++
	}
	t.PartialTick = float64(t.accumulator) / float64(rate)
}

type TimeModule struct {
	TickRate time.Duration
	// Now replaces the wall clock, mainly for tests.
	Now func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := mod.Now
	if now == nil {
		now = time.Now
	}
	rate := mod.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	cmd.AddResources(&Time{
		Time:     now(),
		Dt:       0,
		TickRate: rate,
	})
	app.UseSystem(
		System(func(t *Time) {
			t.Advance(now())
		}).InStage(Prelude),
	)
}
