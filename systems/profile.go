package systems

import (
	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/logging"
	"github.com/automoto/folio/viewport"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ApplyProfiles swaps in a reloaded profile set. The camera keeps its
// position; cards pick up new sizes and hover tiers on the next frame.
func ApplyProfiles(e *ecs.ECS, set viewport.ProfileSet) {
	cfg.Profiles = set
	g, ok := getGallery(e)
	if !ok {
		cfg.SelectProfile(float64(cfg.C.Width))
		return
	}
	g.Profile = cfg.SelectProfile(g.View.W)

	logging.Named("gallery").Info("profile applied",
		zap.String("profile", g.Profile.Name),
		zap.Float64("depthReference", g.Profile.DepthReference),
	)
}
