package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings is the settings blob stored through gdata.
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the settings store. Failure is logged and leaves
// settings in-memory only.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "streetduel",
	})
	if err != nil {
		log.Printf("settings store unavailable: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings reads saved settings; nil means none saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}
	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("settings load: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}
	var s SavedSettings
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("settings parse: %v", err)
		return nil, err
	}
	return &s, nil
}

// ApplySavedSettings pushes loaded settings into the audio and window
// state.
func ApplySavedSettings(s *SavedSettings) {
	if s == nil {
		return
	}
	SetSFXVolume(s.SFXVolume)
	SetMuted(s.Muted)
	ebiten.SetFullscreen(s.Fullscreen)
}

func saveSettings() {
	if gdataManager == nil {
		return
	}
	s := SavedSettings{
		SFXVolume:  SFXVolume(),
		Muted:      Muted(),
		Fullscreen: ebiten.IsFullscreen(),
	}
	data, err := json.Marshal(&s)
	if err != nil {
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("settings save: %v", err)
	}
}
