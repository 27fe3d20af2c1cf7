package animations

import "github.com/hajimehoshi/ebiten/v2"

// Sheet is the slice of sprite-sheet behavior the player needs. A sheet
// that is still loading reports Ready() == false and the animation over
// it degrades to a silent no-op.
type Sheet interface {
	Ready() bool
	Columns() int
	Rows() int
	TileWidth() int
	TileHeight() int
	FrameCountHint() int
	Frame(index int) *ebiten.Image
}

// Animation advances a sheet's frame index over time at a fixed rate.
type Animation struct {
	sheet  Sheet
	frames int // requested count, 0 = derive from hint / full grid
	fps    float64
	loop   bool
	mirror bool // may be flipped horizontally when drawn

	index    int
	carryMs  float64
	finished bool
}

// New creates an animation over sheet. frames == 0 derives the count
// from the sheet's filename hint, falling back to the full grid.
func New(sheet Sheet, frames int, fps float64, loop, mirror bool) *Animation {
	return &Animation{
		sheet:  sheet,
		frames: frames,
		fps:    fps,
		loop:   loop,
		mirror: mirror,
	}
}

// EffectiveFrameCount is the playable frame count, never exceeding the
// physical grid. 0 while the sheet is not ready.
func (a *Animation) EffectiveFrameCount() int {
	if a.sheet == nil || !a.sheet.Ready() {
		return 0
	}
	grid := a.sheet.Columns() * a.sheet.Rows()
	n := a.frames
	if n == 0 {
		n = a.sheet.FrameCountHint()
	}
	if n == 0 || n > grid {
		n = grid
	}
	return n
}

// Update advances the frame index by however many whole frame durations
// fit into the accumulated elapsed time. Large ticks advance several
// frames at once rather than losing time.
func (a *Animation) Update(deltaMs float64) {
	if a.sheet == nil || !a.sheet.Ready() || a.finished || a.fps <= 0 {
		return
	}
	n := a.EffectiveFrameCount()
	if n <= 1 {
		return
	}

	frameMs := 1000 / a.fps
	a.carryMs += deltaMs
	for a.carryMs >= frameMs {
		a.carryMs -= frameMs
		a.index++
		if a.index >= n {
			if a.loop {
				a.index = 0
				continue
			}
			a.index = n - 1
			a.finished = true
			return
		}
	}
}

// Reset rewinds to frame zero. Called on every animation switch, never
// mid-play.
func (a *Animation) Reset() {
	a.index = 0
	a.carryMs = 0
	a.finished = false
}

func (a *Animation) Index() int { return a.index }

// Finished is only meaningful for non-looping animations.
func (a *Animation) Finished() bool { return a.finished }

// Ready reports whether the backing sheet has decoded.
func (a *Animation) Ready() bool { return a.sheet != nil && a.sheet.Ready() }

// Progress is the normalized playback position in [0, 1).
func (a *Animation) Progress() float64 {
	n := a.EffectiveFrameCount()
	if n <= 0 {
		return 0
	}
	return float64(a.index) / float64(n)
}

var drawOp = &ebiten.DrawImageOptions{}

// Draw renders the current frame scaled, horizontally centered on x and
// bottom-aligned to y. flip mirrors the frame about the anchor when the
// animation allows it. Sampling stays nearest-neighbor for pixel art.
func (a *Animation) Draw(screen *ebiten.Image, x, y, scale float64, flip bool) {
	if a.sheet == nil || !a.sheet.Ready() {
		return
	}
	frame := a.sheet.Frame(a.index)
	if frame == nil {
		return
	}

	w := float64(a.sheet.TileWidth())
	h := float64(a.sheet.TileHeight())

	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(-w/2, -h)
	if flip && a.mirror {
		drawOp.GeoM.Scale(-scale, scale)
	} else {
		drawOp.GeoM.Scale(scale, scale)
	}
	drawOp.GeoM.Translate(x, y)
	drawOp.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, drawOp)
}
