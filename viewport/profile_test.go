package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfilesOverridesDefaults(t *testing.T) {
	doc := []byte(`
desktop:
  depthReference: 5000
  hoverTiers:
    - {within: 1.5, scale: 0.8}
    - {within: 0.5, scale: 1.8}
mobile:
  worldSize: 2000
`)
	set, err := ParseProfiles(doc)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, set.Desktop.DepthReference)
	assert.Equal(t, 280.0, set.Desktop.BaseEntityWidth, "unset fields keep defaults")
	require.Len(t, set.Desktop.HoverTiers, 2)
	assert.Equal(t, 0.5, set.Desktop.HoverTiers[0].Within, "tiers sorted nearest first")

	assert.Equal(t, 2000.0, set.Mobile.WorldSize)
	assert.Equal(t, 20000.0, set.Mobile.DepthReference)
}

func TestParseProfilesRejectsBadValues(t *testing.T) {
	_, err := ParseProfiles([]byte("mobile:\n  depthReference: 0\n"))
	assert.ErrorIs(t, err, ErrNonPositiveDepth)

	_, err = ParseProfiles([]byte("desktop:\n  baseEntityWidth: -1\n"))
	assert.ErrorIs(t, err, ErrNonPositiveSize)

	_, err = ParseProfiles([]byte("desktop: [not, a, map]"))
	assert.Error(t, err)
}

func TestSelectProfile(t *testing.T) {
	set := DefaultProfiles()

	assert.Equal(t, "mobile", set.Select(425, false).Name)
	assert.Equal(t, "desktop", set.Select(426, false).Name)
	assert.Equal(t, "mobile", set.Select(1920, true).Name)
}

func TestShuffleDepthFollowsWorldSize(t *testing.T) {
	assert.Equal(t, 1000.0, DesktopProfile().ShuffleDepth())
	assert.Equal(t, 2250.0, MobileProfile().ShuffleDepth())

	set, err := ParseProfiles([]byte("mobile:\n  worldSize: 4000\n"))
	require.NoError(t, err)
	assert.Equal(t, 6000.0, set.Mobile.ShuffleDepth())

	c := NewCamera(DefaultTuning())
	out := c.Shuffle([]Entity{{ID: "far"}}, set.Mobile, &seqRand{vals: []float64{0.5, 0.5, 0.99}}, 0)
	assert.InDelta(t, 1000+0.99*6000, out[0].Z, 1e-9)
}
