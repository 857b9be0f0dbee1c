package main

import (
	"io/fs"
	"testing"

	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/entities"
	"github.com/decker502/starrust/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedResourcesParse(t *testing.T) {
	raw, err := fs.ReadFile(dataFS, "data/resources.yaml")
	require.NoError(t, err)

	assets, err := game.ParseAssetTable(raw)
	require.NoError(t, err)
	assert.NotEmpty(t, assets.Models.DefaultPlayer)
}

func TestEmbeddedLevelsBuild(t *testing.T) {
	raw, err := fs.ReadFile(dataFS, "data/resources.yaml")
	require.NoError(t, err)
	assets, err := game.ParseAssetTable(raw)
	require.NoError(t, err)

	repo := config.NewLevelRepository(func(path string) ([]byte, error) {
		return fs.ReadFile(dataFS, path)
	}, "data/levels")

	paths, err := fs.Glob(dataFS, "data/levels/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		id, ok := config.LevelIDFromPath(path)
		require.True(t, ok, path)

		t.Run(id, func(t *testing.T) {
			level, err := repo.LoadLevel(id)
			require.NoError(t, err)

			longest := -1.0
			for _, sc := range level.Spawners {
				spawner, err := entities.NewWaveSpawner(sc, assets)
				require.NoError(t, err)
				assert.NotEmpty(t, spawner.Instructions)

				total := 0.0
				for _, inst := range sc.Instructions {
					total += inst.ActiveDuration
				}
				if sc.Name == "enemy_wave" {
					longest = total
				}
			}
			// 拾取物脚本不能先于敌舰波次结束
			for _, sc := range level.Spawners {
				if sc.Name == "pickups" {
					total := 0.0
					for _, inst := range sc.Instructions {
						total += inst.ActiveDuration
					}
					assert.Greater(t, total, longest)
				}
			}
		})
	}
}

func TestDefaultLevelIsEmbedded(t *testing.T) {
	_, err := fs.Stat(dataFS, "data/levels/"+config.DefaultLevelID+config.LevelFileExt)
	assert.NoError(t, err)
}
