package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestProfiler_ScopesAndCounts(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler().WithClock(clock.now)

	p.Scope("Scan Lights", func() { clock.t = clock.t.Add(1500 * time.Microsecond) })
	p.BeginScope("Upload Lights")
	clock.t = clock.t.Add(250 * time.Microsecond)
	p.EndScope("Upload Lights")
	p.Scope("Scan Lights", func() { clock.t = clock.t.Add(time.Millisecond) })

	p.SetCount("lights.accepted", 3)
	p.AddCount("lights.faults", 1)
	p.AddCount("lights.faults", 1)

	assert.Equal(t, []string{"Scan Lights", "Upload Lights"}, p.Order)
	assert.Equal(t, time.Millisecond, p.Scopes["Scan Lights"])
	assert.Equal(t, 2, p.Counts["lights.faults"])

	stats := p.GetStatsString()
	assert.Contains(t, stats, "Scan Lights    : 1.00 ms")
	assert.Contains(t, stats, "Upload Lights  : 0.25 ms")
	assert.Contains(t, stats, "lights.accepted: 3")

	p.Reset()
	assert.Equal(t, time.Duration(0), p.Scopes["Upload Lights"])
	assert.Equal(t, 3, p.Counts["lights.accepted"])
}

func TestProfiler_EndWithoutBegin(t *testing.T) {
	p := NewProfiler()
	p.EndScope("missing")
	assert.Empty(t, p.Scopes)
}
