package scenes

import (
	"image/color"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/archetypes"
	"github.com/arcadebit/streetduel/assets"
	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
	"github.com/arcadebit/streetduel/systems"
	"github.com/arcadebit/streetduel/systems/factory"
	"github.com/arcadebit/streetduel/ui"
)

// SceneChanger allows scenes to trigger transitions.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// DuelScene runs the whole fight: the intro overlay, the round
// lifecycle and the two fighters.
type DuelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	once         sync.Once
}

func NewDuelScene(sc SceneChanger) *DuelScene {
	return &DuelScene{sceneChanger: sc}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
	if ds.inIntro() {
		ds.titleUI.Update()
	}
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)
	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
	if ds.inIntro() {
		ds.titleUI.Draw(screen)
	}
}

func (ds *DuelScene) inIntro() bool {
	if ds.ecs == nil {
		return false
	}
	entry, ok := components.Match.First(ds.ecs.World)
	if !ok {
		return false
	}
	return components.Match.Get(entry).State == cfg.MatchStateIntro
}

func (ds *DuelScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())
	ds.ecs = e

	// Singletons
	archetypes.Clock.Spawn(e)
	archetypes.Audio.Spawn(e)
	archetypes.Banner.Spawn(e)
	matchEntry := archetypes.Match.Spawn(e)
	components.Match.Set(matchEntry, &components.MatchData{
		State: cfg.MatchStateIntro,
		Round: 1,
	})

	stageEntry := archetypes.Stage.Spawn(e)
	components.Stage.Get(stageEntry).Stage = assets.LoadStage(
		filepath.Join(cfg.C.AssetsDir, cfg.Stage.MapFile))

	// Fighters
	factory.CreateSpace(e)
	loader := systems.AudioLoader()
	factory.CreatePlayer(e, cfg.Player,
		factory.BuildAnimations(cfg.Player),
		factory.LoadFighterSounds(loader, cfg.Player.SheetKey))
	factory.CreateEnemy(e, cfg.Enemy,
		factory.BuildAnimations(cfg.Enemy),
		factory.LoadFighterSounds(loader, cfg.Enemy.SheetKey))

	ds.titleUI = ui.NewTitleUI(func() {
		systems.StartMatch(e)
	})

	// One tick: clock, audio, input, lifecycle, then the fight itself.
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateMatch)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateEnemy)
	e.AddSystem(systems.UpdateFighters)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateBanner)

	e.AddRenderer(cfg.Default, systems.DrawStage)
	e.AddRenderer(cfg.Default, systems.DrawFighters)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
}
