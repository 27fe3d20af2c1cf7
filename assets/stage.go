package assets

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"

	"github.com/arcadebit/streetduel/config"
)

// Stage is the arena the two fighters share: a background image and the
// horizontal band they may occupy.
type Stage struct {
	Background *ebiten.Image
	MinX       float64
	MaxX       float64
	FloorY     float64
}

// LoadStage builds the arena from a Tiled map. Any failure falls back to
// the configured flat-color stage; the fight itself never depends on the
// map being present.
func LoadStage(path string) *Stage {
	st := &Stage{
		MinX:   config.Stage.MinX,
		MaxX:   config.Stage.MaxX,
		FloorY: config.Stage.FloorY,
	}

	m, err := tiled.LoadFile(path)
	if err != nil {
		log.Printf("stage map %s unavailable: %v", path, err)
		return st
	}
	r, err := render.NewRenderer(m)
	if err != nil {
		log.Printf("stage map %s renderer: %v", path, err)
		return st
	}
	if err := r.RenderVisibleLayers(); err != nil {
		log.Printf("stage map %s render: %v", path, err)
		return st
	}

	st.Background = ebiten.NewImageFromImage(r.Result)
	w := float64(m.Width * m.TileWidth)
	st.MinX = config.Stage.MarginX
	st.MaxX = w - config.Stage.MarginX
	return st
}

// Clamp keeps a fighter's ground-contact x inside the stage band.
func (s *Stage) Clamp(x float64) float64 {
	if x < s.MinX {
		return s.MinX
	}
	if x > s.MaxX {
		return s.MaxX
	}
	return x
}
