package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFont(t *testing.T) {
	require.NoError(t, LoadFontWithSize(Small, goregular.TTF, 12))
	assert.True(t, Loaded(Small))
	assert.NotNil(t, Small.Get())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont(FontName("broken"), []byte("not a font")))
	assert.False(t, Loaded(FontName("broken")))
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
