package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
	"github.com/arcadebit/streetduel/fonts"
)

const (
	hudBarWidth  = 320
	hudBarHeight = 18
	hudMargin    = 16
)

var (
	hudBarBack = color.RGBA{40, 40, 40, 255}
	hudBarFill = color.RGBA{40, 220, 40, 255}
	hudTextCol = color.RGBA{240, 240, 240, 255}
	hudHintCol = color.RGBA{200, 200, 200, 255}
	hudDrawOp  = &ebiten.DrawImageOptions{}
)

// DrawHUD renders both health bars, the round counter, the state banner
// and the restart hint. It only reads simulation state.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	m, ok := match(e)
	if !ok {
		return
	}
	if m.State == cfg.MatchStateIntro {
		return // the title overlay owns the screen
	}

	player, enemy, ok := fighters(e)
	if ok {
		drawHealthBar(screen, hudMargin, player.HealthFraction(), false)
		drawHealthBar(screen, float64(cfg.C.Width)-hudMargin-hudBarWidth, enemy.HealthFraction(), true)
	}

	drawCenteredText(screen, fmt.Sprintf("ROUND %d", m.Round), fonts.HUD.Get(),
		float64(cfg.C.Width)/2, hudMargin+hudBarHeight, 1, hudTextCol)

	if entry, ok := components.Banner.First(e.World); ok {
		b := components.Banner.Get(entry)
		if b.Text != "" {
			drawCenteredText(screen, b.Text, fonts.Banner.Get(),
				float64(cfg.C.Width)/2, float64(cfg.C.Height)*0.4, b.Scale, hudTextCol)
		}
	}

	if m.State == cfg.MatchStateKO {
		drawCenteredText(screen, "PRESS ENTER TO RESTART", fonts.Small.Get(),
			float64(cfg.C.Width)/2, float64(cfg.C.Height)*0.55, 1, hudHintCol)
	}
}

// drawHealthBar fills right-to-left for the enemy side so both bars
// drain toward the screen edges.
func drawHealthBar(screen *ebiten.Image, x, fraction float64, rightAligned bool) {
	vector.DrawFilledRect(screen,
		float32(x), hudMargin,
		hudBarWidth, hudBarHeight,
		hudBarBack, false)

	w := float32(hudBarWidth * fraction)
	fx := float32(x)
	if rightAligned {
		fx = float32(x) + hudBarWidth - w
	}
	vector.DrawFilledRect(screen, fx, hudMargin, w, hudBarHeight, hudBarFill, false)
}

func drawCenteredText(screen *ebiten.Image, s string, face font.Face, cx, cy, scale float64, clr color.RGBA) {
	b := text.BoundString(face, s)
	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Translate(
		-float64(b.Min.X)-float64(b.Dx())/2,
		-float64(b.Min.Y)-float64(b.Dy())/2,
	)
	hudDrawOp.GeoM.Scale(scale, scale)
	hudDrawOp.GeoM.Translate(cx, cy)
	hudDrawOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, hudDrawOp)
}
