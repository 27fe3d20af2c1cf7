package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
	"github.com/arcadebit/streetduel/tags"
)

// UpdateMatch drives the round lifecycle: intro waits for the start
// signal, countdown and the ready banner run on the synthetic clock, the
// fight hands over to the combat system, and ko waits for restart.
func UpdateMatch(e *ecs.ECS) {
	m, ok := match(e)
	if !ok {
		return
	}
	t := tick(e)

	switch m.State {
	case cfg.MatchStateIntro:
		if intentJustPressed(e, cfg.ActionStart) {
			StartMatch(e)
		}

	case cfg.MatchStateCountdown:
		if m.Elapsed(t.NowMs) >= cfg.Match.CountdownMs {
			m.Enter(cfg.MatchStateReady, t.NowMs)
		}

	case cfg.MatchStateReady:
		if m.Elapsed(t.NowMs) >= 2*cfg.Match.ReadyHalfMs {
			m.Enter(cfg.MatchStateFight, t.NowMs)
		}

	case cfg.MatchStateFight:
		// Combat owns the fight -> ko transition.

	case cfg.MatchStateKO:
		if intentJustPressed(e, cfg.ActionRestart) {
			RestartMatch(e)
		}
	}
}

// StartMatch begins the first round; a no-op outside intro.
func StartMatch(e *ecs.ECS) {
	m, ok := match(e)
	if !ok || m.State != cfg.MatchStateIntro {
		return
	}
	enterCountdown(e)
}

// RestartMatch begins the next round; a no-op outside ko.
func RestartMatch(e *ecs.ECS) {
	m, ok := match(e)
	if !ok || m.State != cfg.MatchStateKO {
		return
	}
	m.Round++
	resetRound(e)
	enterCountdown(e)
}

// enterCountdown parks both fighters: idle pose, walk sounds off, stun
// cleared. AI and hit resolution stay suspended until the fight state.
func enterCountdown(e *ecs.ECS) {
	m, ok := match(e)
	if !ok {
		return
	}
	m.Winner = components.WinnerNone
	m.Enter(cfg.MatchStateCountdown, tick(e).NowMs)

	fighterEach(e, func(f *components.FighterData) {
		f.Stunned = false
		f.SetAnimation(cfg.AnimIdle)
		stopWalkSounds(f)
	})
}

// resetRound restores the initial round layout. The round counter is the
// only state that survives.
func resetRound(e *ecs.ECS) {
	if entry, ok := tags.Player.First(e.World); ok {
		resetFighter(components.Fighter.Get(entry), cfg.Player)
	}
	if entry, ok := tags.Enemy.First(e.World); ok {
		resetFighter(components.Fighter.Get(entry), cfg.Enemy)
	}
}

func resetFighter(f *components.FighterData, fc cfg.FighterConfig) {
	f.Health = fc.MaxHealth
	f.X = fc.SpawnX
	f.Y = fc.SpawnY
	f.Facing = fc.Facing
	f.Stunned = false
	f.HasLandedHit = false
	f.NextAttackReadyAt = 0
	f.SetAnimation(cfg.AnimIdle)
	for _, a := range f.Animations {
		a.Reset()
	}
	f.SyncObject()
}

func intentJustPressed(e *ecs.ECS, a cfg.ActionID) bool {
	entry, ok := components.Intent.First(e.World)
	if !ok {
		return false
	}
	return components.Intent.Get(entry).JustPressed(a)
}
