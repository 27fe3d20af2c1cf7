package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space holds the resolv collision space both hurtboxes live in.
var Space = donburi.NewComponentType[resolv.Space]()
