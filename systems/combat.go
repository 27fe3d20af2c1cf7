package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
	"github.com/arcadebit/streetduel/tags"
)

// UpdateCombat resolves the fight tick: taunt recovery, hit detection
// for both sides, then the knockout check. Runs only in the fight state;
// entering ko freezes everything here until a restart.
func UpdateCombat(e *ecs.ECS) {
	if !isFighting(e) {
		return
	}
	player, enemy, ok := fighters(e)
	if !ok {
		return
	}

	// Taunt recovery. The enemy's stun lifts here and nowhere else.
	if player.Current == cfg.AnimTaunt && animFinished(player) {
		player.SetAnimation(cfg.AnimIdle)
	}
	if enemy.Current == cfg.AnimTaunt && animFinished(enemy) {
		enemy.Stunned = false
		enemy.SetAnimation(cfg.AnimIdle)
	}

	resolveHit(e, player, enemy, tags.ResolvEnemy)
	resolveHit(e, enemy, player, tags.ResolvPlayer)

	// Knockout. The player-wins check is ordered first; with discrete
	// per-swing damage both cannot realistically reach zero in one tick.
	if enemy.Health == 0 {
		endRound(e, components.WinnerPlayer)
	} else if player.Health == 0 {
		endRound(e, components.WinnerEnemy)
	}
}

func animFinished(f *components.FighterData) bool {
	a := f.CurrentAnimation()
	return a != nil && a.Finished()
}

// resolveHit applies the attacker's damage to the defender at most once
// per swing. The collision space does the broadphase; the final word is
// a strict AABB overlap between hitbox and hurtbox.
func resolveHit(e *ecs.ECS, attacker, defender *components.FighterData, defenderTag string) {
	if attacker.HasLandedHit {
		return
	}
	hb, ok := attacker.Hitbox()
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(hb.X, hb.Y, hb.W, hb.H, tags.ResolvHitbox)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, defenderTag)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		if !hb.Overlaps(components.Box{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
			continue
		}
		defender.TakeDamage(attacker.AttackDamage)
		attacker.HasLandedHit = true
		QueueSound(e, cfg.SoundHit)
		return
	}
}

// endRound enters ko: stun drops on both sides, the winner taunts if it
// can, the enemy concedes with giveup when it loses, and the player just
// idles (it has no giveup pose). Animation playback continues; the rest
// of the simulation freezes until the restart signal.
func endRound(e *ecs.ECS, winner components.Winner) {
	m, ok := match(e)
	if !ok {
		return
	}
	player, enemy, ok := fighters(e)
	if !ok {
		return
	}

	m.Winner = winner
	m.Enter(cfg.MatchStateKO, tick(e).NowMs)

	player.Stunned = false
	enemy.Stunned = false
	stopWalkSounds(player, enemy)

	winFighter, loseFighter := player, enemy
	if winner == components.WinnerEnemy {
		winFighter, loseFighter = enemy, player
	}

	if winFighter.HasAnimation(cfg.AnimTaunt) {
		winFighter.SetAnimation(cfg.AnimTaunt)
	} else {
		winFighter.SetAnimation(cfg.AnimIdle)
	}
	if loseFighter == enemy && loseFighter.HasAnimation(cfg.AnimGiveUp) {
		loseFighter.SetAnimation(cfg.AnimGiveUp)
	} else {
		loseFighter.SetAnimation(cfg.AnimIdle)
	}

	QueueSound(e, cfg.SoundKO)
}

func stopWalkSounds(fs ...*components.FighterData) {
	for _, f := range fs {
		if f.Sounds != nil {
			f.Sounds[cfg.AnimWalk].Stop()
		}
	}
}
