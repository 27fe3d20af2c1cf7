package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/assets"
	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
	"github.com/arcadebit/streetduel/tags"
)

// UpdatePlayer translates the tick's intents into player movement and
// attacks. Only active while the match is fighting; during an attack or
// taunt the fighter is committed and movement intents are ignored.
func UpdatePlayer(e *ecs.ECS) {
	if !isFighting(e) {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Fighter.Get(playerEntry)
	intent := components.Intent.Get(playerEntry)
	t := tick(e)

	if player.Stunned {
		return
	}
	switch player.Current {
	case cfg.AnimAttack, cfg.AnimTaunt:
		return
	}

	if intent.JustPressed(cfg.ActionTaunt) {
		player.SetAnimation(cfg.AnimTaunt)
		if enemyEntry, ok := tags.Enemy.First(e.World); ok {
			components.Fighter.Get(enemyEntry).ForceTauntStun(t.NowMs)
		}
		return
	}

	if intent.Held(cfg.ActionAttack) {
		player.SetAnimation(cfg.AnimAttack)
		return
	}

	switch {
	case intent.Held(cfg.ActionMoveLeft):
		player.Facing = -1
		player.SetAnimation(cfg.AnimWalk)
		player.X -= player.WalkSpeed * t.DeltaMs / 1000
	case intent.Held(cfg.ActionMoveRight):
		player.Facing = 1
		player.SetAnimation(cfg.AnimWalk)
		player.X += player.WalkSpeed * t.DeltaMs / 1000
	default:
		player.SetAnimation(cfg.AnimIdle)
	}
	player.X = stage(e).Clamp(player.X)
}

func isFighting(e *ecs.ECS) bool {
	m, ok := match(e)
	return ok && m.State == cfg.MatchStateFight
}

func match(e *ecs.ECS) (*components.MatchData, bool) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(entry), true
}

func tick(e *ecs.ECS) *components.TickData {
	entry, ok := components.Tick.First(e.World)
	if !ok {
		return &components.TickData{}
	}
	return components.Tick.Get(entry)
}

func stage(e *ecs.ECS) *components.StageData {
	entry, ok := components.Stage.First(e.World)
	if !ok {
		return &components.StageData{Stage: fallbackStage}
	}
	return components.Stage.Get(entry)
}

func fighters(e *ecs.ECS) (player, enemy *components.FighterData, ok bool) {
	pe, pok := tags.Player.First(e.World)
	ee, eok := tags.Enemy.First(e.World)
	if !pok || !eok {
		return nil, nil, false
	}
	return components.Fighter.Get(pe), components.Fighter.Get(ee), true
}

func fighterEach(e *ecs.ECS, fn func(*components.FighterData)) {
	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fn(components.Fighter.Get(entry))
	})
}

// fallbackStage keeps movement clamping sane when no stage entity was
// spawned (unit tests build worlds without one).
var fallbackStage = &assets.Stage{
	MinX:   cfg.Stage.MinX,
	MaxX:   cfg.Stage.MaxX,
	FloorY: cfg.Stage.FloorY,
}
