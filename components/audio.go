package components

import (
	"github.com/yohamta/donburi"

	"github.com/arcadebit/streetduel/config"
)

// AudioData queues shared sound cues raised during a tick; the audio
// system drains it once per frame.
type AudioData struct {
	Pending []config.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
