package systems

import (
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/assets"
	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
)

// Global audio state - created once and shared for the process lifetime.
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	sharedCues         map[cfg.SoundID]*assets.Sound
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(
			globalAudioContext,
			filepath.Join(cfg.C.AssetsDir, cfg.Audio.Dir),
		)
		sharedCues = make(map[cfg.SoundID]*assets.Sound)
		for id, name := range cfg.CueNames {
			sharedCues[id] = globalAudioLoader.LoadCue(name, cfg.Audio.CandidateExts, false)
		}
	})
}

// AudioLoader exposes the shared loader so factories can resolve
// per-fighter cues against the same context.
func AudioLoader() *assets.AudioLoader {
	initGlobalAudio()
	return globalAudioLoader
}

// QueueSound raises a shared cue; it plays when UpdateAudio drains the
// queue at the start of the next frame.
func QueueSound(e *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	a.Pending = append(a.Pending, id)
}

// UpdateAudio drains pending shared cues and handles the mute and
// fullscreen toggles.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		globalMuted = !globalMuted
		saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		saveSettings()
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	for _, id := range a.Pending {
		playShared(id)
	}
	a.Pending = a.Pending[:0]
}

func playShared(id cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}
	s, ok := sharedCues[id]
	if !ok {
		return
	}
	s.SetVolume(globalSFXVolume)
	s.Play()
}

// SetSFXVolume adjusts and is persisted by the settings layer.
func SetSFXVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	globalSFXVolume = v
}

func SFXVolume() float64 { return globalSFXVolume }

func SetMuted(m bool) { globalMuted = m }
func Muted() bool     { return globalMuted }
