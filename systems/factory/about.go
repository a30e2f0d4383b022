package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/folio/archetypes"
	"github.com/automoto/folio/assets"
	"github.com/automoto/folio/components"
	"github.com/automoto/folio/textfx"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateAbout(ecs *ecs.ECS, content assets.About) *donburi.Entry {
	about := archetypes.About.Spawn(ecs)
	heading := textfx.NewReveal(content.Heading, rand.New(rand.NewSource(time.Now().UnixNano())))
	heading.Start()
	components.About.Set(about, &components.AboutData{
		Content: content,
		Heading: heading,
	})
	return about
}
