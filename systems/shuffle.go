package systems

import (
	"github.com/automoto/folio/components"
	"github.com/automoto/folio/logging"
	"github.com/automoto/folio/tags"
	"github.com/automoto/folio/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateShuffle scatters the cards when a shuffle was requested and saves
// the new layout.
func UpdateShuffle(e *ecs.ECS) {
	g, ok := getGallery(e)
	if !ok || !g.ShuffleRequested {
		return
	}
	g.ShuffleRequested = false
	camera, ok := getCamera(e)
	if !ok {
		return
	}

	var entries []*donburi.Entry
	var entities []viewport.Entity
	tags.Project.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
		entities = append(entities, components.Project.Get(entry).Project.Entity)
	})

	shuffled := camera.Rig.Shuffle(entities, g.Profile, g.Rng, camera.ClockMs)
	for i, entry := range entries {
		components.Project.Get(entry).Project.Entity = shuffled[i]
	}

	logging.Named("gallery").Info("shuffled projects",
		zap.Int("projects", len(shuffled)),
		zap.String("profile", g.Profile.Name),
	)
	SaveLayout(e)
}
