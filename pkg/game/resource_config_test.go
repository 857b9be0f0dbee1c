package game

import (
	"strings"
	"testing"

	"github.com/decker502/starrust/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResourcesYAML = `version: "1.0"
base_path: assets
sounds:
  - id: SOUND_LASER_SHOT
    role: laser_shot
    path: audio/laser_shot.ogg
  - id: SOUND_LIGHT_EXPLOSION
    role: light_explosion
    path: audio/light_explosion.ogg
  - id: SOUND_LIGHT_POW
    role: light_pow
    path: audio/light_pow.ogg
  - id: SOUND_NONE
    role: no_sound
  - id: SOUND_COIN_LARRY
    role: coin_larry
    path: /audio/coin_larry.ogg
models:
  - id: MODEL_DEFAULT_PLAYER
    role: default_player
    path: models/player.glb
  - id: MODEL_DEFAULT_ENEMY
    role: default_enemy
    path: models/enemy.glb
  - id: MODEL_JET_CHARGER
    role: jet_charger
    path: models/jet_charger.glb
  - id: MODEL_SPACE_PLATFORM
    role: space_platform
    path: models/space_platform.glb
  - id: MODEL_POWERUP_STAR
    role: powerup_star
    path: models/star.glb
  - id: MODEL_DEFAULT_BULLET
    role: default_bullet
    path: models/bullet.glb
  - id: MODEL_DEFAULT_ENEMY_BULLET
    role: default_enemy_bullet
    path: models/enemy_bullet.glb
`

func TestParseAssetTable(t *testing.T) {
	table, err := ParseAssetTable([]byte(testResourcesYAML))
	require.NoError(t, err)

	assert.Equal(t, types.SoundHandle("SOUND_LASER_SHOT"), table.Audio.LaserShot)
	assert.Equal(t, types.SoundHandle("SOUND_NONE"), table.Audio.NoSound)
	assert.Equal(t, types.ModelHandle("MODEL_JET_CHARGER"), table.Models.JetCharger)
	assert.Equal(t, types.ModelHandle("MODEL_DEFAULT_ENEMY_BULLET"), table.Models.DefaultEnemyBullet)

	path, ok := table.SoundPath(table.Audio.LaserShot)
	assert.True(t, ok)
	assert.Equal(t, "assets/audio/laser_shot.ogg", path)

	path, ok = table.SoundPath(table.Audio.CoinLarry)
	assert.True(t, ok)
	assert.Equal(t, "assets/audio/coin_larry.ogg", path)

	_, ok = table.SoundPath(table.Audio.NoSound)
	assert.False(t, ok, "静音资源没有文件")

	assert.Len(t, table.SoundHandles(), 4)

	path, ok = table.ModelPath(table.Models.DefaultPlayer)
	assert.True(t, ok)
	assert.Equal(t, "assets/models/player.glb", path)
}

func TestParseAssetTableErrors(t *testing.T) {
	tests := []struct {
		name string
		edit func(string) string
	}{
		{"missing role", func(s string) string {
			return strings.Replace(s, "    role: light_pow\n", "", 1)
		}},
		{"unknown role", func(s string) string {
			return strings.Replace(s, "role: light_pow", "role: heavy_pow", 1)
		}},
		{"duplicate role", func(s string) string {
			return strings.Replace(s, "role: light_pow", "role: laser_shot", 1)
		}},
		{"duplicate id", func(s string) string {
			return strings.Replace(s, "id: SOUND_LIGHT_POW", "id: SOUND_LASER_SHOT", 1)
		}},
		{"bad yaml", func(s string) string {
			return "sounds: [unclosed"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAssetTable([]byte(tt.edit(testResourcesYAML)))
			assert.Error(t, err)
		})
	}
}
