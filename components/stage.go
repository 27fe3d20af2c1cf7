package components

import (
	"github.com/yohamta/donburi"

	"github.com/arcadebit/streetduel/assets"
)

// StageData holds the loaded arena.
type StageData struct {
	*assets.Stage
}

var Stage = donburi.NewComponentType[StageData]()
