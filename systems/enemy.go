package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	cfg "github.com/arcadebit/streetduel/config"
)

// UpdateEnemy runs the reactive AI: face the player, close in while out
// of range, attack on a cooldown once in range. Suspended outside the
// fight state and whenever the enemy is stunned or mid-attack/taunt.
func UpdateEnemy(e *ecs.ECS) {
	if !isFighting(e) {
		return
	}
	player, enemy, ok := fighters(e)
	if !ok {
		return
	}
	if enemy.Stunned {
		return
	}
	switch enemy.Current {
	case cfg.AnimAttack, cfg.AnimTaunt:
		return
	}

	t := tick(e)
	dx := player.X - enemy.X
	if dx < 0 {
		enemy.Facing = -1
	} else {
		enemy.Facing = 1
	}

	if math.Abs(dx) > cfg.Combat.AttackRange {
		enemy.SetAnimation(cfg.AnimWalk)
		enemy.X += enemy.Facing * enemy.WalkSpeed * t.DeltaMs / 1000
		enemy.X = stage(e).Clamp(enemy.X)
		return
	}

	enemy.SetAnimation(cfg.AnimIdle)
	if t.NowMs >= enemy.NextAttackReadyAt {
		enemy.SetAnimation(cfg.AnimAttack)
		enemy.NextAttackReadyAt = t.NowMs + cfg.Combat.EnemyAttackCooldownMs
	}
}
