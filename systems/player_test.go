package systems

import (
	"testing"

	cfg "github.com/arcadebit/streetduel/config"
)

func TestPlayerMovement(t *testing.T) {
	e, player, _ := newFightWorld(t)

	setIntent(e, cfg.ActionMoveRight)
	step(e, 100)
	if want := 400 + player.WalkSpeed*0.1; player.X != want {
		t.Errorf("player X = %v, want %v", player.X, want)
	}
	if player.Current != cfg.AnimWalk || player.Facing != 1 {
		t.Errorf("pose = %v facing = %v, want walk facing right", player.Current, player.Facing)
	}

	setIntent(e, cfg.ActionMoveLeft)
	step(e, 100)
	if player.Facing != -1 {
		t.Errorf("facing = %v, want -1 after reversing", player.Facing)
	}

	setIntent(e)
	step(e, 100)
	if player.Current != cfg.AnimIdle {
		t.Errorf("pose = %v, want idle with no input", player.Current)
	}
}

func TestPlayerClampedToStage(t *testing.T) {
	e, player, _ := newFightWorld(t)
	player.X = cfg.Stage.MaxX - 1

	setIntent(e, cfg.ActionMoveRight)
	for i := 0; i < 10; i++ {
		step(e, 100)
	}
	if player.X != cfg.Stage.MaxX {
		t.Errorf("player X = %v, want clamped at %v", player.X, cfg.Stage.MaxX)
	}

	player.X = cfg.Stage.MinX + 1
	setIntent(e, cfg.ActionMoveLeft)
	for i := 0; i < 10; i++ {
		step(e, 100)
	}
	if player.X != cfg.Stage.MinX {
		t.Errorf("player X = %v, want clamped at %v", player.X, cfg.Stage.MinX)
	}
}

func TestPlayerCommittedDuringAttack(t *testing.T) {
	e, player, _ := newFightWorld(t)

	setIntent(e, cfg.ActionAttack)
	step(e, 100)
	if player.Current != cfg.AnimAttack {
		t.Fatalf("pose = %v, want attack", player.Current)
	}

	// Movement input is ignored until the swing finishes.
	x := player.X
	setIntent(e, cfg.ActionMoveLeft)
	step(e, 100)
	if player.X != x || player.Current != cfg.AnimAttack {
		t.Errorf("attack interrupted: X %v -> %v pose %v", x, player.X, player.Current)
	}

	// The 6-frame swing ends after 600 ms and movement resumes.
	stepUntil(e, 100, testClock(e).NowMs+600)
	if player.Current != cfg.AnimWalk {
		t.Errorf("pose = %v, want walk after the swing", player.Current)
	}
}
