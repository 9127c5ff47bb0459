package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	parsed, err := ParseTuning(defaultTuningYAML, CurrentTuning())
	require.NoError(t, err)
	assert.Equal(t, CurrentTuning(), parsed)
}

func TestParseTuningOverlaysPartialFile(t *testing.T) {
	base := CurrentTuning()
	parsed, err := ParseTuning([]byte("player:\n  jump_speed: 4.5\nenemy:\n  patrol_speed: 1\n"), base)
	require.NoError(t, err)

	assert.Equal(t, 4.5, parsed.Player.JumpSpeed)
	assert.Equal(t, 1.0, parsed.Enemy.PatrolSpeed)
	assert.Equal(t, base.Player.DashSpeed, parsed.Player.DashSpeed)
	assert.Equal(t, base.Physics, parsed.Physics)
}

func TestParseTuningRejectsInvalidValues(t *testing.T) {
	base := CurrentTuning()

	_, err := ParseTuning([]byte("player:\n  dash_active_threshold: 60\n"), base)
	assert.Error(t, err)

	_, err = ParseTuning([]byte("physics:\n  tile_size: 0\n"), base)
	assert.Error(t, err)

	_, err = ParseTuning([]byte("physics: [not, a, map]\n"), base)
	assert.Error(t, err)
}

func TestLoadTuningCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  smoothing: 8\n"), 0o644))

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 8.0, tuning.Camera.Smoothing)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSpriteKeyString(t *testing.T) {
	assert.Equal(t, "player/wall_slide", SpriteKey{Category: SpritePlayer, Index: int(ActionWallSlide)}.String())
	assert.Equal(t, "particle/leaf", SpriteKey{Category: SpriteParticle, Index: int(ParticleLeaf)}.String())
	assert.Equal(t, "large_decor/2", SpriteKey{Category: SpriteLargeDecor, Index: 2}.String())
	assert.Equal(t, 9, Variants(SpriteGrass))
	assert.Equal(t, 22, FrameCount(SpriteKey{Category: SpritePlayer, Index: int(ActionIdle)}))
}
