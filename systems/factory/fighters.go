package factory

import (
	"path/filepath"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/archetypes"
	"github.com/arcadebit/streetduel/assets"
	"github.com/arcadebit/streetduel/assets/animations"
	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
	"github.com/arcadebit/streetduel/tags"
)

// BuildAnimations loads the sprite-sheet set for a fighter config. Each
// sheet decodes in the background; animations over a sheet that never
// loads simply never draw.
func BuildAnimations(fc cfg.FighterConfig) map[cfg.AnimID]*animations.Animation {
	dir := filepath.Join(cfg.C.AssetsDir, "images", fc.SheetKey)
	anims := make(map[cfg.AnimID]*animations.Animation)
	for id, def := range cfg.FighterAnimations[fc.SheetKey] {
		sheet := assets.LoadSpriteSheet(dir, def.File, fc.FrameWidth, fc.FrameHeight)
		anims[id] = animations.New(sheet, def.Frames, def.FPS, def.Loop, def.Flip)
	}
	return anims
}

// LoadFighterSounds resolves the walk/attack/taunt cues for an actor.
// Missing cues come back nil, which plays as silence.
func LoadFighterSounds(loader *assets.AudioLoader, actor string) map[cfg.AnimID]*assets.Sound {
	exts := cfg.Audio.CandidateExts
	return map[cfg.AnimID]*assets.Sound{
		cfg.AnimWalk:   loader.LoadCue(cfg.FighterCue(actor, "walk"), exts, true),
		cfg.AnimAttack: loader.LoadCue(cfg.FighterCue(actor, "attack"), exts, false),
		cfg.AnimTaunt:  loader.LoadCue(cfg.FighterCue(actor, "taunt"), exts, false),
	}
}

// CreatePlayer spawns the player fighter with its intent surface.
func CreatePlayer(e *ecs.ECS, fc cfg.FighterConfig,
	anims map[cfg.AnimID]*animations.Animation, sounds map[cfg.AnimID]*assets.Sound) *donburi.Entry {
	entry := archetypes.Player.Spawn(e)
	initFighter(e, entry, fc, anims, sounds, tags.ResolvPlayer)
	return entry
}

// CreateEnemy spawns the AI-controlled fighter.
func CreateEnemy(e *ecs.ECS, fc cfg.FighterConfig,
	anims map[cfg.AnimID]*animations.Animation, sounds map[cfg.AnimID]*assets.Sound) *donburi.Entry {
	entry := archetypes.Enemy.Spawn(e)
	initFighter(e, entry, fc, anims, sounds, tags.ResolvEnemy)
	return entry
}

func initFighter(e *ecs.ECS, entry *donburi.Entry, fc cfg.FighterConfig,
	anims map[cfg.AnimID]*animations.Animation, sounds map[cfg.AnimID]*assets.Sound, resolvTag string) {
	f := components.Fighter.Get(entry)
	*f = components.FighterData{
		X:            fc.SpawnX,
		Y:            fc.SpawnY,
		Facing:       fc.Facing,
		Scale:        fc.Scale,
		FrameWidth:   fc.FrameWidth,
		FrameHeight:  fc.FrameHeight,
		Animations:   anims,
		Current:      cfg.AnimIdle,
		MaxHealth:    fc.MaxHealth,
		Health:       fc.MaxHealth,
		AttackDamage: fc.AttackDamage,
		WalkSpeed:    fc.WalkSpeed,
		Sounds:       sounds,
	}

	hb := f.Hurtbox()
	f.Object = resolv.NewObject(hb.X, hb.Y, hb.W, hb.H, resolvTag)
	f.Object.Data = entry
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(f.Object)
	}
}

// CreateSpace spawns the collision space shared by both hurtboxes.
func CreateSpace(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Space.Spawn(e)
	components.Space.Set(entry, resolv.NewSpace(cfg.C.Width, cfg.C.Height, 16, 16))
	return entry
}
