package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
	"github.com/arcadebit/streetduel/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Fighter,
		components.Intent,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Fighter,
	)
	Match = newArchetype(
		components.Match,
	)
	Clock = newArchetype(
		components.Tick,
	)
	Space = newArchetype(
		components.Space,
	)
	Stage = newArchetype(
		components.Stage,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Banner = newArchetype(
		components.Banner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
