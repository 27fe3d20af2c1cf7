package systems

import (
	"testing"

	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
)

// newFightWorld starts a test world mid-fight with the fighters standing
// in striking distance, hurtboxes synced into the collision space.
func newFightWorld(t *testing.T) (*ecs.ECS, *components.FighterData, *components.FighterData) {
	t.Helper()
	e := newTestWorld()
	m := testMatch(t, e)
	m.Enter(cfg.MatchStateFight, testClock(e).NowMs)

	player, enemy := testFighters(t, e)
	player.X = 400
	enemy.X = 460
	player.SyncObject()
	enemy.SyncObject()
	return e, player, enemy
}

// beginSwing puts the fighter two frames into an attack, inside the
// active window of a 6-frame swing.
func beginSwing(f *components.FighterData) {
	f.SetAnimation(cfg.AnimIdle)
	f.SetAnimation(cfg.AnimAttack)
	f.CurrentAnimation().Update(200)
}

func TestSwingDamagesAtMostOnce(t *testing.T) {
	e, player, enemy := newFightWorld(t)

	beginSwing(player)
	UpdateCombat(e)
	if enemy.Health != cfg.Enemy.MaxHealth-player.AttackDamage {
		t.Fatalf("enemy health = %d, want %d", enemy.Health, cfg.Enemy.MaxHealth-player.AttackDamage)
	}
	if !player.HasLandedHit {
		t.Error("HasLandedHit not set after a landed hit")
	}

	// The same swing keeps overlapping on later ticks but never damages
	// again.
	UpdateCombat(e)
	UpdateCombat(e)
	if enemy.Health != cfg.Enemy.MaxHealth-player.AttackDamage {
		t.Errorf("enemy health = %d after repeat ticks, want unchanged", enemy.Health)
	}

	// A fresh swing damages once more.
	beginSwing(player)
	UpdateCombat(e)
	if enemy.Health != cfg.Enemy.MaxHealth-2*player.AttackDamage {
		t.Errorf("enemy health = %d after second swing, want %d",
			enemy.Health, cfg.Enemy.MaxHealth-2*player.AttackDamage)
	}
}

func TestSwingOutOfRangeMisses(t *testing.T) {
	e, player, enemy := newFightWorld(t)
	enemy.X = 700
	enemy.SyncObject()

	beginSwing(player)
	UpdateCombat(e)

	if enemy.Health != cfg.Enemy.MaxHealth {
		t.Errorf("enemy health = %d, want untouched at range", enemy.Health)
	}
	if player.HasLandedHit {
		t.Error("whiffed swing set HasLandedHit")
	}
}

func TestWindupDoesNotHit(t *testing.T) {
	e, player, enemy := newFightWorld(t)

	// Frame 0 of a 6-frame swing is windup, outside the active window.
	player.SetAnimation(cfg.AnimAttack)
	UpdateCombat(e)

	if enemy.Health != cfg.Enemy.MaxHealth {
		t.Errorf("enemy health = %d, want untouched during windup", enemy.Health)
	}
}

func TestPlayerKnockout(t *testing.T) {
	e, player, enemy := newFightWorld(t)
	m := testMatch(t, e)

	// 180 health at 10 damage per swing: exactly 18 swings to zero.
	for i := 0; i < 18; i++ {
		beginSwing(player)
		UpdateCombat(e)
	}

	if enemy.Health != 0 {
		t.Fatalf("enemy health = %d after 18 swings, want 0", enemy.Health)
	}
	if m.State != cfg.MatchStateKO {
		t.Fatalf("state = %v, want ko", m.State)
	}
	if m.Winner != components.WinnerPlayer {
		t.Errorf("winner = %v, want player", m.Winner)
	}
	if got := m.Banner(testClock(e).NowMs); got != cfg.Match.BannerPlayerWin {
		t.Errorf("banner = %q, want %q", got, cfg.Match.BannerPlayerWin)
	}
	if player.Current != cfg.AnimTaunt {
		t.Errorf("winner pose = %v, want taunt", player.Current)
	}
	if enemy.Current != cfg.AnimGiveUp {
		t.Errorf("loser pose = %v, want giveup", enemy.Current)
	}

	// ko freezes hit resolution; further swings change nothing.
	beginSwing(player)
	UpdateCombat(e)
	if enemy.Health != 0 || m.State != cfg.MatchStateKO {
		t.Error("combat ran after the knockout")
	}
}

func TestEnemyKnocksOutPlayer(t *testing.T) {
	e, player, enemy := newFightWorld(t)
	m := testMatch(t, e)
	player.Health = enemy.AttackDamage

	beginSwing(enemy)
	UpdateCombat(e)

	if player.Health != 0 {
		t.Fatalf("player health = %d, want 0", player.Health)
	}
	if m.Winner != components.WinnerEnemy {
		t.Errorf("winner = %v, want enemy", m.Winner)
	}
	if got := m.Banner(testClock(e).NowMs); got != cfg.Match.BannerEnemyWin {
		t.Errorf("banner = %q, want %q", got, cfg.Match.BannerEnemyWin)
	}
	if enemy.Current != cfg.AnimTaunt {
		t.Errorf("winner pose = %v, want taunt", enemy.Current)
	}
	// The player has no giveup pose and just idles through the loss.
	if player.Current != cfg.AnimIdle {
		t.Errorf("loser pose = %v, want idle", player.Current)
	}
}

func TestTauntStunsEnemy(t *testing.T) {
	e, player, enemy := newFightWorld(t)
	stunStart := testClock(e).NowMs

	setIntent(e, cfg.ActionTaunt)
	step(e, 100)
	setIntent(e)

	if player.Current != cfg.AnimTaunt {
		t.Fatalf("player pose = %v, want taunt", player.Current)
	}
	if !enemy.Stunned || enemy.Current != cfg.AnimTaunt {
		t.Fatalf("enemy stunned = %v pose = %v, want stunned taunt", enemy.Stunned, enemy.Current)
	}
	wantReady := stunStart + 100 + cfg.Combat.StunAttackDelayMs
	if enemy.NextAttackReadyAt != wantReady {
		t.Errorf("NextAttackReadyAt = %v, want %v", enemy.NextAttackReadyAt, wantReady)
	}

	// The AI is fully suspended while stunned, even in walking range.
	ex := enemy.X
	step(e, 100)
	if enemy.X != ex {
		t.Errorf("stunned enemy moved: %v -> %v", ex, enemy.X)
	}

	// The 6-frame taunt finishes after 600 ms; the stun lifts with it.
	stepUntil(e, 100, stunStart+900)
	if enemy.Stunned {
		t.Error("stun outlived the taunt animation")
	}
	if player.Current == cfg.AnimTaunt {
		t.Error("player still taunting after its animation finished")
	}
}

func TestStunDelaysEnemyAttack(t *testing.T) {
	e, _, enemy := newFightWorld(t)

	// An enemy fresh out of a stun: idle, in range, with the post-stun
	// cooldown still running.
	start := testClock(e).NowMs
	enemy.NextAttackReadyAt = start + cfg.Combat.StunAttackDelayMs

	step(e, 100)
	if enemy.Current == cfg.AnimAttack {
		t.Fatal("enemy attacked inside the post-stun cooldown")
	}

	stepUntil(e, 100, start+cfg.Combat.StunAttackDelayMs)
	if enemy.Current != cfg.AnimAttack {
		t.Errorf("enemy pose = %v, want attack once the cooldown expires", enemy.Current)
	}
}

func TestEnemyAIApproachesAndAttacks(t *testing.T) {
	e, player, enemy := newFightWorld(t)
	enemy.X = 760
	enemy.SyncObject()

	// Out of range: walk toward the player.
	step(e, 100)
	if enemy.Current != cfg.AnimWalk {
		t.Fatalf("enemy pose = %v, want walk while closing in", enemy.Current)
	}
	if enemy.Facing != -1 {
		t.Errorf("enemy facing = %v, want -1 toward the player", enemy.Facing)
	}
	if want := 760 - enemy.WalkSpeed*0.1; enemy.X != want {
		t.Errorf("enemy X = %v, want %v", enemy.X, want)
	}

	// Step into range: the first tick there attacks and arms the cooldown.
	enemy.X = player.X + cfg.Combat.AttackRange
	now := testClock(e).NowMs
	step(e, 100)
	if enemy.Current != cfg.AnimAttack {
		t.Fatalf("enemy pose = %v, want attack in range", enemy.Current)
	}
	if want := now + 100 + cfg.Combat.EnemyAttackCooldownMs; enemy.NextAttackReadyAt != want {
		t.Errorf("NextAttackReadyAt = %v, want %v", enemy.NextAttackReadyAt, want)
	}

	// The swing plays out, then the cooldown holds the enemy at idle.
	attackDone := testClock(e).NowMs + 600
	stepUntil(e, 100, attackDone+100)
	if enemy.Current != cfg.AnimIdle {
		t.Errorf("enemy pose = %v, want idle between swings", enemy.Current)
	}
}
