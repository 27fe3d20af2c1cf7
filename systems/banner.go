package systems

import (
	"strconv"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
)

// UpdateBanner keeps the overlay banner in sync with the match state and
// pops newly shown text with a short scale tween. Countdown digits run
// through the same banner, so each second pops again.
func UpdateBanner(e *ecs.ECS) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	b := components.Banner.Get(entry)
	m, ok := match(e)
	if !ok {
		return
	}
	t := tick(e)

	text := m.Banner(t.NowMs)
	if m.State == cfg.MatchStateCountdown {
		text = strconv.Itoa(m.CountdownSeconds(t.NowMs))
	}

	if text != b.Text {
		b.Text = text
		b.Scale = 1
		b.Pop = nil
		if text != "" {
			b.Pop = gween.New(2.0, 1.0, 0.25, ease.OutQuad)
		}
	}
	if b.Pop != nil {
		v, done := b.Pop.Update(float32(t.DeltaMs / 1000))
		b.Scale = float64(v)
		if done {
			b.Pop = nil
		}
	}
}
