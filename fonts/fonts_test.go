package fonts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Regular, Bold, Title, Small, Mono} {
		assert.NotNil(t, name.Get(), name)
	}
	assert.Greater(t, Title.Get().Metrics().Height.Ceil(), Small.Get().Metrics().Height.Ceil())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestGetUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestWrap(t *testing.T) {
	require.NoError(t, LoadFontWithSize(Regular, goregular.TTF, 14))
	face := Regular.Get()
	s := "Selected work in motion design, interactive installations and web experiments"
	width := 200

	lines := Wrap(face, s, width)
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, font.MeasureString(face, l).Ceil(), width, l)
	}
	assert.Equal(t, strings.Fields(s), strings.Fields(strings.Join(lines, " ")))
}

func TestWrapLongWord(t *testing.T) {
	require.NoError(t, LoadFontWithSize(Regular, goregular.TTF, 14))
	lines := Wrap(Regular.Get(), "a supercalifragilisticexpialidocious b", 40)
	assert.Equal(t, []string{"a", "supercalifragilisticexpialidocious", "b"}, lines)
}

func TestWrapEmpty(t *testing.T) {
	require.NoError(t, LoadFontWithSize(Regular, goregular.TTF, 14))
	assert.Empty(t, Wrap(Regular.Get(), "   ", 100))
}
