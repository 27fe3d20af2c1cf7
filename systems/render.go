package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
)

var stageDrawOp = &ebiten.DrawImageOptions{}

// DrawStage paints the arena background, or the flat fallback color when
// the map never loaded.
func DrawStage(e *ecs.ECS, screen *ebiten.Image) {
	st := stage(e)
	if st.Background == nil {
		screen.Fill(cfg.Stage.BackgroundColor)
		return
	}
	stageDrawOp.GeoM.Reset()
	screen.DrawImage(st.Background, stageDrawOp)
}

// DrawFighters renders both fighters bottom-anchored on their ground
// contact points, mirrored when facing left.
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		f := components.Fighter.Get(entry)
		a := f.CurrentAnimation()
		if a == nil {
			return
		}
		a.Draw(screen, f.X, f.Y, f.Scale, f.Facing < 0)
	})
}
