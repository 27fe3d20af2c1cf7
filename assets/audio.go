package assets

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader resolves named cues against candidate files on disk and
// decodes them into players. Decoded PCM is cached by cue name.
type AudioLoader struct {
	dir     string
	context *audio.Context
	cache   map[string][]byte
}

func NewAudioLoader(ctx *audio.Context, dir string) *AudioLoader {
	return &AudioLoader{
		dir:     dir,
		context: ctx,
		cache:   make(map[string][]byte),
	}
}

// LoadCue probes "<name>.wav", "<name>.mp3", "<name>.ogg" in order and
// returns a Sound over the first candidate that exists and decodes. When
// every candidate is missing the cue stays silent: LoadCue returns nil
// and the nil Sound is a playable no-op.
func (l *AudioLoader) LoadCue(name string, candidates []string, loop bool) *Sound {
	pcm, ok := l.cache[name]
	if !ok {
		for _, ext := range candidates {
			path := filepath.Join(l.dir, name+ext)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			decoded, err := l.decode(ext, data)
			if err != nil {
				log.Printf("audio cue %s undecodable: %v", path, err)
				continue
			}
			pcm = decoded
			ok = true
			break
		}
		if !ok {
			log.Printf("audio cue %q has no playable candidate, staying silent", name)
			return nil
		}
		l.cache[name] = pcm
	}

	var player *audio.Player
	var err error
	if loop {
		player, err = l.context.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	} else {
		player, err = l.context.NewPlayer(bytes.NewReader(pcm))
	}
	if err != nil {
		log.Printf("audio cue %q player: %v", name, err)
		return nil
	}
	return &Sound{player: player}
}

func (l *AudioLoader) decode(ext string, data []byte) ([]byte, error) {
	rate := l.context.SampleRate()
	var stream io.Reader
	var err error
	switch ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(rate, bytes.NewReader(data))
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(rate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(rate, bytes.NewReader(data))
	default:
		return nil, os.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// Sound is a single playable cue. The zero/nil Sound is silent, so a
// fighter missing a cue never needs special-casing.
type Sound struct {
	player *audio.Player
}

// Play starts the cue. A cue that is already sounding ignores the
// request, so repeated triggers never stack duplicates.
func (s *Sound) Play() {
	if s == nil || s.player == nil {
		return
	}
	if s.player.IsPlaying() {
		return
	}
	if err := s.player.Rewind(); err != nil {
		return
	}
	s.player.Play()
}

// Stop halts playback and rewinds so the next Play starts clean.
func (s *Sound) Stop() {
	if s == nil || s.player == nil {
		return
	}
	if s.player.IsPlaying() {
		s.player.Pause()
	}
	_ = s.player.Rewind()
}

// SetVolume scales the cue's playback volume (0..1).
func (s *Sound) SetVolume(v float64) {
	if s == nil || s.player == nil {
		return
	}
	s.player.SetVolume(v)
}
