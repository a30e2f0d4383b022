package factory

import (
	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	"github.com/automoto/folio/tags"
	"github.com/automoto/folio/viewport"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePointer(ecs *ecs.ECS) *donburi.Entry {
	pointer := archetypes.Pointer.Spawn(ecs)

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
	obj.Data = pointer
	components.Object.SetValue(pointer, components.ObjectData{Object: obj})
	components.Pointer.SetValue(pointer, components.PointerData{Pointer: viewport.NewPointer()})
	return pointer
}
