package assets

import (
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSheet wraps one image sliced into a fixed grid of equally sized
// frames. The grid is derived exactly once, when the backing image
// finishes decoding; until then the sheet reports not-ready and every
// frame query returns a safe zero value.
type SpriteSheet struct {
	name  string
	tileW int
	tileH int
	hint  int // frame count parsed from the file name, 0 = no hint

	img     *ebiten.Image
	columns int
	rows    int
	ready   atomic.Bool
}

// NewSpriteSheet creates a sheet that is not ready yet. The frame-count
// hint is parsed from name once, here.
func NewSpriteSheet(name string, tileW, tileH int) *SpriteSheet {
	return &SpriteSheet{
		name:  name,
		tileW: tileW,
		tileH: tileH,
		hint:  FrameCountHint(name),
	}
}

// LoadSpriteSheet begins decoding name under dir in the background. A
// load failure is logged and leaves the sheet permanently not-ready; the
// animation over it is simply never drawn.
func LoadSpriteSheet(dir, name string, tileW, tileH int) *SpriteSheet {
	s := NewSpriteSheet(name, tileW, tileH)
	path := filepath.Join(dir, name)
	go func() {
		f, err := os.Open(path)
		if err != nil {
			log.Printf("sprite sheet %s unavailable: %v", path, err)
			return
		}
		defer f.Close()
		src, _, err := image.Decode(f)
		if err != nil {
			log.Printf("sprite sheet %s undecodable: %v", path, err)
			return
		}
		s.attach(ebiten.NewImageFromImage(src))
	}()
	return s
}

// attach publishes the decoded image. Fields are written before the
// ready flag is stored so tick-thread readers see a consistent sheet.
func (s *SpriteSheet) attach(img *ebiten.Image) {
	s.img = img
	b := img.Bounds()
	s.resolveGrid(b.Dx(), b.Dy())
	s.ready.Store(true)
}

// resolveGrid derives columns and rows from the image dimensions. A
// sheet smaller than one tile still counts as a single frame.
func (s *SpriteSheet) resolveGrid(w, h int) {
	s.columns = w / s.tileW
	s.rows = h / s.tileH
	if s.columns < 1 {
		s.columns = 1
	}
	if s.rows < 1 {
		s.rows = 1
	}
}

func (s *SpriteSheet) Ready() bool { return s.ready.Load() }

func (s *SpriteSheet) Name() string { return s.name }

func (s *SpriteSheet) TileWidth() int  { return s.tileW }
func (s *SpriteSheet) TileHeight() int { return s.tileH }

// Columns reports the derived grid width, 0 before the sheet is ready.
func (s *SpriteSheet) Columns() int {
	if !s.Ready() {
		return 0
	}
	return s.columns
}

// Rows reports the derived grid height, 0 before the sheet is ready.
func (s *SpriteSheet) Rows() int {
	if !s.Ready() {
		return 0
	}
	return s.rows
}

func (s *SpriteSheet) FrameCountHint() int { return s.hint }

// Frame returns the sub-image for the given cell index, row-major, or
// nil if the sheet is not ready or the index falls outside the grid.
func (s *SpriteSheet) Frame(index int) *ebiten.Image {
	if !s.Ready() || index < 0 || index >= s.columns*s.rows {
		return nil
	}
	col := index % s.columns
	row := index / s.columns
	r := image.Rect(col*s.tileW, row*s.tileH, (col+1)*s.tileW, (row+1)*s.tileH)
	return s.img.SubImage(r).(*ebiten.Image)
}

// FrameCountHint parses a trailing digit run from the file name, ignoring
// the extension: "attack_6.png" and "walk8.png" both carry hints. A name
// without trailing digits yields 0.
func FrameCountHint(name string) int {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	i := len(stem)
	for i > 0 && stem[i-1] >= '0' && stem[i-1] <= '9' {
		i--
	}
	if i == len(stem) {
		return 0
	}
	n, err := strconv.Atoi(stem[i:])
	if err != nil {
		return 0
	}
	return n
}
