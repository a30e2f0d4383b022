package archetypes

import (
	"github.com/automoto/folio/components"
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Project = newArchetype(
		tags.Project,
		components.Project,
		components.Object,
	)
	Pointer = newArchetype(
		tags.Pointer,
		components.Pointer,
		components.Object,
	)
	Header = newArchetype(
		tags.Header,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Gallery = newArchetype(
		components.Gallery,
	)
	Preloader = newArchetype(
		components.Preloader,
		components.Tween,
	)
	About = newArchetype(
		components.About,
	)
	Settings = newArchetype(
		components.Settings,
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
