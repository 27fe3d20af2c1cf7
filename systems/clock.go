package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
)

var lastTick time.Time

// UpdateClock advances the synthetic match clock by the real elapsed
// time, clamped so a stalled host (backgrounded window) never causes a
// catch-up burst. Must run before every other system.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Tick.First(e.World)
	if !ok {
		return
	}
	t := components.Tick.Get(entry)

	now := time.Now()
	if lastTick.IsZero() {
		lastTick = now
	}
	dt := float64(now.Sub(lastTick).Microseconds()) / 1000
	lastTick = now

	t.Advance(clampDelta(dt))
}

// clampDelta bounds one host tick delta to the configured maximum.
func clampDelta(dt float64) float64 {
	if dt > cfg.C.MaxTickDeltaMs {
		return cfg.C.MaxTickDeltaMs
	}
	return dt
}
