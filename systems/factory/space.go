package factory

import (
	"math"

	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/components"
	"github.com/automoto/folio/viewport"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the screen-space resolv grid used for hover and header
// hit tests. It covers the whole view, rounded up to whole cells.
func CreateSpace(ecs *ecs.ECS, view viewport.Size, cell int) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	w := int(math.Ceil(view.W/float64(cell))) * cell
	h := int(math.Ceil(view.H/float64(cell))) * cell
	components.Space.Set(entry, resolv.NewSpace(w, h, cell, cell))
	return entry
}
