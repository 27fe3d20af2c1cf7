package config

// AnimationDef describes one sprite-sheet animation.
//
// Frames == 0 means "derive": prefer the trailing frame count embedded in
// the file name, else fall back to the sheet's full grid.
type AnimationDef struct {
	File   string // under images/<SheetKey>/
	FPS    float64
	Frames int
	Loop   bool
	Flip   bool // may be mirrored when the fighter faces left
}

// FighterAnimations maps a sheet key to its animation set. The player has
// no giveup sheet on purpose: when the player loses it simply idles.
var FighterAnimations = map[string]map[AnimID]AnimationDef{
	"player": {
		AnimIdle:   {File: "idle_8.png", FPS: 10, Loop: true, Flip: true},
		AnimWalk:   {File: "walk_8.png", FPS: 12, Loop: true, Flip: true},
		AnimAttack: {File: "attack_6.png", FPS: 14, Flip: true},
		AnimTaunt:  {File: "taunt_6.png", FPS: 10, Flip: true},
	},
	"enemy": {
		AnimIdle:   {File: "idle_8.png", FPS: 10, Loop: true, Flip: true},
		AnimWalk:   {File: "walk_8.png", FPS: 12, Loop: true, Flip: true},
		AnimAttack: {File: "attack_6.png", FPS: 12, Flip: true},
		AnimTaunt:  {File: "taunt_6.png", FPS: 10, Flip: true},
		AnimGiveUp: {File: "giveup_6.png", FPS: 8, Flip: true},
	},
}
