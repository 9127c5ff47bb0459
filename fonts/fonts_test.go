package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{HUD, HUDSmall, Title} {
		assert.NotNil(t, name.Get())
	}
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
}
