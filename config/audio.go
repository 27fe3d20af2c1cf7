package config

// SoundID enumerates shared, non-fighter sound cues.
type SoundID int

const (
	SoundHit SoundID = iota
	SoundKO
)

// AudioConfig contains playback and cue-resolution configuration.
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64

	// Dir is the cue directory under AssetsDir.
	Dir string

	// CandidateExts is the probe order for a named cue; the first
	// candidate that exists and decodes wins.
	CandidateExts []string
}

var Audio = AudioConfig{
	SampleRate:    44100,
	DefaultSFXVol: 0.8,
	Dir:           "audio",
	CandidateExts: []string{".wav", ".mp3", ".ogg"},
}

// CueNames maps shared cues to their base file names.
var CueNames = map[SoundID]string{
	SoundHit: "hit",
	SoundKO:  "ko",
}

// FighterCue builds the "<actor>_<cue>" base name for a fighter sound.
func FighterCue(actor, cue string) string {
	return actor + "_" + cue
}
