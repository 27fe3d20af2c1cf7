package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/archetypes"
	"github.com/arcadebit/streetduel/assets/animations"
	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
	"github.com/arcadebit/streetduel/systems/factory"
)

type stubSheet struct {
	cols int
}

func (s *stubSheet) Ready() bool             { return true }
func (s *stubSheet) Columns() int            { return s.cols }
func (s *stubSheet) Rows() int               { return 1 }
func (s *stubSheet) TileWidth() int          { return 80 }
func (s *stubSheet) TileHeight() int         { return 80 }
func (s *stubSheet) FrameCountHint() int     { return 0 }
func (s *stubSheet) Frame(int) *ebiten.Image { return nil }

// 10 fps everywhere: one frame per 100 ms keeps the arithmetic readable.
func testAnims(withGiveUp bool) map[cfg.AnimID]*animations.Animation {
	anims := map[cfg.AnimID]*animations.Animation{
		cfg.AnimIdle:   animations.New(&stubSheet{cols: 8}, 0, 10, true, true),
		cfg.AnimWalk:   animations.New(&stubSheet{cols: 8}, 0, 10, true, true),
		cfg.AnimAttack: animations.New(&stubSheet{cols: 6}, 0, 10, false, true),
		cfg.AnimTaunt:  animations.New(&stubSheet{cols: 6}, 0, 10, false, true),
	}
	if withGiveUp {
		anims[cfg.AnimGiveUp] = animations.New(&stubSheet{cols: 6}, 0, 10, false, true)
	}
	return anims
}

// newTestWorld builds the fight world the scene would, minus everything
// that needs a display or a disk: stub sheets, no sounds, no stage.
func newTestWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	archetypes.Clock.Spawn(e)
	archetypes.Banner.Spawn(e)
	matchEntry := archetypes.Match.Spawn(e)
	components.Match.Set(matchEntry, &components.MatchData{State: cfg.MatchStateIntro, Round: 1})
	factory.CreateSpace(e)
	factory.CreatePlayer(e, cfg.Player, testAnims(false), nil)
	factory.CreateEnemy(e, cfg.Enemy, testAnims(true), nil)
	return e
}

func testClock(e *ecs.ECS) *components.TickData {
	return tick(e)
}

// setIntent replaces the player's intents wholesale, rolling the current
// tick into the previous one so edges resolve naturally.
func setIntent(e *ecs.ECS, actions ...cfg.ActionID) {
	entry, ok := components.Intent.First(e.World)
	if !ok {
		return
	}
	i := components.Intent.Get(entry)
	i.Previous = i.Current
	i.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		i.Current[a] = true
	}
}

// step runs one simulation tick in scene order, skipping the systems
// that touch real hardware (clock, keyboard, audio output).
func step(e *ecs.ECS, deltaMs float64) {
	testClock(e).Advance(deltaMs)
	UpdateMatch(e)
	UpdatePlayer(e)
	UpdateEnemy(e)
	UpdateFighters(e)
	UpdateCombat(e)
	UpdateBanner(e)
}

func testMatch(t *testing.T, e *ecs.ECS) *components.MatchData {
	t.Helper()
	m, ok := match(e)
	if !ok {
		t.Fatal("no match entity")
	}
	return m
}

func testFighters(t *testing.T, e *ecs.ECS) (player, enemy *components.FighterData) {
	t.Helper()
	player, enemy, ok := fighters(e)
	if !ok {
		t.Fatal("missing fighter entities")
	}
	return player, enemy
}

func stepUntil(e *ecs.ECS, deltaMs, untilMs float64) {
	for testClock(e).NowMs < untilMs {
		step(e, deltaMs)
	}
}

func TestMatchLifecycleTimeline(t *testing.T) {
	e := newTestWorld()
	m := testMatch(t, e)

	if m.State != cfg.MatchStateIntro {
		t.Fatalf("initial state = %v, want intro", m.State)
	}

	setIntent(e, cfg.ActionStart)
	step(e, 100)
	setIntent(e)

	now := testClock(e).NowMs
	if m.State != cfg.MatchStateCountdown {
		t.Fatalf("state after start = %v, want countdown", m.State)
	}
	if m.CountdownSeconds(now) != 3 {
		t.Errorf("countdown = %d, want 3", m.CountdownSeconds(now))
	}

	stepUntil(e, 100, 1600)
	if got := m.CountdownSeconds(testClock(e).NowMs); got != 2 {
		t.Errorf("countdown at 1.5s = %d, want 2", got)
	}

	stepUntil(e, 100, 3100)
	now = testClock(e).NowMs
	if m.State != cfg.MatchStateReady {
		t.Fatalf("state at 3s = %v, want ready", m.State)
	}
	if got := m.Banner(now); got != cfg.Match.BannerReady {
		t.Errorf("banner = %q, want %q", got, cfg.Match.BannerReady)
	}

	stepUntil(e, 100, 3900)
	if got := m.Banner(testClock(e).NowMs); got != cfg.Match.BannerFight {
		t.Errorf("banner in second ready half = %q, want %q", got, cfg.Match.BannerFight)
	}
	if m.State != cfg.MatchStateReady {
		t.Errorf("state during FIGHT! banner = %v, want ready", m.State)
	}

	stepUntil(e, 100, 4500)
	if m.State != cfg.MatchStateFight {
		t.Errorf("state at 4.5s = %v, want fight", m.State)
	}
}

func TestStartMatchOnlyFromIntro(t *testing.T) {
	e := newTestWorld()
	m := testMatch(t, e)
	m.Enter(cfg.MatchStateFight, 0)

	StartMatch(e)
	if m.State != cfg.MatchStateFight {
		t.Errorf("StartMatch outside intro moved state to %v", m.State)
	}
}

func TestCountdownSuspendsFighters(t *testing.T) {
	e := newTestWorld()
	StartMatch(e)
	player, enemy := testFighters(t, e)
	px, ex := player.X, enemy.X

	setIntent(e, cfg.ActionMoveRight)
	for i := 0; i < 10; i++ {
		step(e, 100)
	}

	if player.X != px {
		t.Errorf("player moved during countdown: %v -> %v", px, player.X)
	}
	if enemy.X != ex {
		t.Errorf("enemy AI ran during countdown: %v -> %v", ex, enemy.X)
	}
}

func TestRestartMatchResetsRound(t *testing.T) {
	e := newTestWorld()
	m := testMatch(t, e)
	player, enemy := testFighters(t, e)

	m.Enter(cfg.MatchStateFight, testClock(e).NowMs)
	player.X = 500
	enemy.X = 520
	player.Health = 40
	enemy.Health = 0
	step(e, 100) // combat notices the knockout

	if m.State != cfg.MatchStateKO || m.Winner != components.WinnerPlayer {
		t.Fatalf("state = %v winner = %v, want ko / player", m.State, m.Winner)
	}

	setIntent(e, cfg.ActionRestart)
	step(e, 100)

	if m.State != cfg.MatchStateCountdown {
		t.Fatalf("state after restart = %v, want countdown", m.State)
	}
	if m.Round != 2 {
		t.Errorf("round = %d, want 2", m.Round)
	}
	if m.Winner != components.WinnerNone {
		t.Errorf("winner = %v, want none", m.Winner)
	}
	if player.Health != cfg.Player.MaxHealth || enemy.Health != cfg.Enemy.MaxHealth {
		t.Errorf("health = %d/%d, want full", player.Health, enemy.Health)
	}
	if player.X != cfg.Player.SpawnX || enemy.X != cfg.Enemy.SpawnX {
		t.Errorf("positions = %v/%v, want spawn layout", player.X, enemy.X)
	}
	if player.Current != cfg.AnimIdle || enemy.Current != cfg.AnimIdle {
		t.Errorf("poses = %v/%v, want idle", player.Current, enemy.Current)
	}
}

func TestRestartIgnoredOutsideKO(t *testing.T) {
	e := newTestWorld()
	m := testMatch(t, e)
	m.Enter(cfg.MatchStateFight, 0)

	setIntent(e, cfg.ActionRestart)
	step(e, 100)

	if m.State != cfg.MatchStateFight || m.Round != 1 {
		t.Errorf("state = %v round = %d, want fight round 1", m.State, m.Round)
	}
}

func TestBannerPopsOnChange(t *testing.T) {
	e := newTestWorld()
	StartMatch(e)

	entry, ok := components.Banner.First(e.World)
	if !ok {
		t.Fatal("no banner entity")
	}
	b := components.Banner.Get(entry)

	step(e, 100)
	if b.Text != "3" {
		t.Fatalf("banner text = %q, want countdown digit 3", b.Text)
	}
	if b.Scale <= 1 {
		t.Errorf("fresh banner scale = %v, want a pop above 1", b.Scale)
	}

	// The pop settles back to 1 well within a second.
	for i := 0; i < 5; i++ {
		step(e, 100)
	}
	if b.Scale != 1 {
		t.Errorf("settled banner scale = %v, want 1", b.Scale)
	}

	stepUntil(e, 100, 1200)
	if b.Text != "2" {
		t.Errorf("banner text at 1.2s = %q, want 2", b.Text)
	}
}
