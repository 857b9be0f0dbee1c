package scenes

import (
	"io/fs"
	"math/rand"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/starrust/internal/hotreload"
	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/systems"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortLevelYAML = `
id: short
spawners:
  - name: enemy_wave
    instructions:
      - ship: default_enemy
        locations: [3]
        activeDuration: 1
        spawnInterval: 0.25
`

const duelLevelYAML = `
id: duel
spawners:
  - name: enemy_wave
    instructions:
      - ship: default_enemy
        locations: [3]
        activeDuration: 10
        spawnInterval: 0.5
`

func testAssets() *game.AssetTable {
	return &game.AssetTable{
		Audio: game.AudioClips{
			LaserShot:      "SOUND_LASER_SHOT",
			LightExplosion: "SOUND_LIGHT_EXPLOSION",
			LightPow:       "SOUND_LIGHT_POW",
			NoSound:        "SOUND_NONE",
			CoinLarry:      "SOUND_COIN_LARRY",
		},
		Models: game.SceneModels{
			DefaultPlayer:      "MODEL_DEFAULT_PLAYER",
			DefaultEnemy:       "MODEL_DEFAULT_ENEMY",
			JetCharger:         "MODEL_JET_CHARGER",
			SpacePlatform:      "MODEL_SPACE_PLATFORM",
			PowerupStar:        "MODEL_POWERUP_STAR",
			DefaultBullet:      "MODEL_DEFAULT_BULLET",
			DefaultEnemyBullet: "MODEL_DEFAULT_ENEMY_BULLET",
		},
	}
}

func testRepository() *config.LevelRepository {
	files := fstest.MapFS{
		"levels/short.yaml": {Data: []byte(shortLevelYAML)},
		"levels/duel.yaml":  {Data: []byte(duelLevelYAML)},
	}
	return config.NewLevelRepository(func(path string) ([]byte, error) {
		return fs.ReadFile(files, path)
	}, "levels")
}

type fireInput struct{}

func (fireInput) PlayerInput() systems.PlayerInput {
	return systems.PlayerInput{Fire: true}
}

type queuedReloads struct {
	pending []hotreload.Reload
}

func (q *queuedReloads) Poll() []hotreload.Reload {
	out := q.pending
	q.pending = nil
	return out
}

func newTestScene(t *testing.T, opts GameSceneOptions) (*GameScene, *game.GameState) {
	t.Helper()
	gs := game.NewGameState()
	if opts.Assets == nil {
		opts.Assets = testAssets()
	}
	if opts.Levels == nil {
		opts.Levels = testRepository()
	}
	opts.Rand = rand.New(rand.NewSource(1))
	scene, err := NewGameScene(gs, opts)
	require.NoError(t, err)
	return scene, gs
}

func runFor(scene *GameScene, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += config.TimeStep {
		scene.Update(config.TimeStep)
	}
}

func TestNewGameSceneRequiresDependencies(t *testing.T) {
	gs := game.NewGameState()
	_, err := NewGameScene(gs, GameSceneOptions{Levels: testRepository()})
	assert.ErrorIs(t, err, errNoAssets)

	_, err = NewGameScene(gs, GameSceneOptions{Assets: testAssets()})
	assert.ErrorIs(t, err, errNoLevels)
}

func TestGameSceneRunsLevelToEnd(t *testing.T) {
	scores := game.NewSaveManager(nil)
	scene, gs := newTestScene(t, GameSceneOptions{LevelID: "short", Scores: scores})

	scene.StartLevel()
	scene.Update(config.TimeStep)
	require.Equal(t, game.AppStateInGame, gs.App())
	assert.Len(t, ecs.GetEntitiesWith1[*components.PlayerComponent](scene.EntityManager()), 1)

	runFor(scene, 2*time.Second)

	assert.Equal(t, game.AppStateMenu, gs.App())
	assert.Equal(t, game.MenuStateLevelEnd, gs.Menu())
	assert.Empty(t, ecs.GetEntitiesWith1[*components.LevelEntityComponent](scene.EntityManager()))
	assert.Empty(t, ecs.GetEntitiesWith1[*components.WaveSpawnerComponent](scene.EntityManager()))
	assert.Equal(t, 1, scores.Data().Runs)
	require.NotNil(t, scores.Data().Last)
	assert.Equal(t, "short", scores.Data().Last.LevelID)
}

func TestGameScenePlayerScores(t *testing.T) {
	scene, gs := newTestScene(t, GameSceneOptions{LevelID: "duel", Input: fireInput{}})

	scene.StartLevel()
	scene.Update(config.TimeStep)

	// 玩家与出生点 3 对齐：子弹 Y = 玩家 Y - 10
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](scene.EntityManager())
	require.Len(t, players, 1)
	transform, _ := ecs.GetComponent[*components.TransformComponent](scene.EntityManager(), players[0])
	transform.Position = cp.Vector{X: config.PlayerSpawnPosition.X, Y: config.SpawnLocations()[3].Y + 10}

	runFor(scene, 4*time.Second)

	assert.Equal(t, game.AppStateInGame, gs.App())
	assert.GreaterOrEqual(t, gs.Score, 20)
	assert.Zero(t, gs.Score%20, "默认敌舰每架 20 分")
}

func TestGameScenePauseTearsDownLevel(t *testing.T) {
	scene, gs := newTestScene(t, GameSceneOptions{LevelID: "duel"})

	scene.StartLevel()
	runFor(scene, time.Second)
	require.NotEmpty(t, ecs.GetEntitiesWith1[*components.LevelEntityComponent](scene.EntityManager()))

	scene.TogglePause()
	scene.Update(config.TimeStep)
	assert.Equal(t, game.AppStatePaused, gs.App())
	assert.Empty(t, ecs.GetEntitiesWith1[*components.LevelEntityComponent](scene.EntityManager()))

	scene.TogglePause()
	scene.Update(config.TimeStep)
	assert.Equal(t, game.AppStateInGame, gs.App())
	assert.Len(t, ecs.GetEntitiesWith1[*components.WaveSpawnerComponent](scene.EntityManager()), 1, "恢复时重新开始关卡")
}

func TestGameSceneAppliesReloads(t *testing.T) {
	reloads := &queuedReloads{}
	repo := testRepository()
	scene, _ := newTestScene(t, GameSceneOptions{LevelID: "short", Levels: repo, Reloads: reloads})

	reloaded := &config.LevelConfig{ID: "short", Name: "Reloaded", Spawners: []config.SpawnerConfig{
		{Name: "a", Instructions: []config.InstructionConfig{{Ship: "star", ActiveDuration: 5, SpawnInterval: 1}}},
		{Name: "b", Instructions: []config.InstructionConfig{{Ship: "star", ActiveDuration: 5, SpawnInterval: 1}}},
	}}
	reloads.pending = []hotreload.Reload{
		{Path: "levels/short.yaml", Err: assert.AnError},
		{Path: "levels/short.yaml", Level: reloaded},
	}
	scene.Update(config.TimeStep)

	level, err := repo.LoadLevel("short")
	require.NoError(t, err)
	assert.Equal(t, "Reloaded", level.Name)

	scene.StartLevel()
	scene.Update(config.TimeStep)
	assert.Len(t, ecs.GetEntitiesWith1[*components.WaveSpawnerComponent](scene.EntityManager()), 2)
}

func TestGameSceneIdleInMenu(t *testing.T) {
	scene, gs := newTestScene(t, GameSceneOptions{LevelID: "short"})

	runFor(scene, time.Second)
	assert.Equal(t, game.AppStateMenu, gs.App())
	assert.Empty(t, ecs.GetEntitiesWith1[*components.LevelEntityComponent](scene.EntityManager()))
}

var _ game.Saveable = (*GameScene)(nil)

func TestGameSceneSaveOnExit(t *testing.T) {
	scores := game.NewSaveManager(nil)
	scene, gs := newTestScene(t, GameSceneOptions{LevelID: "duel", Scores: scores})

	// 菜单中退出不记录
	assert.True(t, scene.SaveOnExit())
	assert.Zero(t, scores.Data().Runs)

	scene.StartLevel()
	scene.Update(config.TimeStep)
	gs.AddScore(60)

	assert.True(t, scene.SaveOnExit())
	assert.Equal(t, 1, scores.Data().Runs)
	require.NotNil(t, scores.Data().Last)
	assert.Equal(t, "duel", scores.Data().Last.LevelID)
	assert.Equal(t, 60, scores.HighScore())
}

func TestGameSceneScreenShakeToggle(t *testing.T) {
	scene, _ := newTestScene(t, GameSceneOptions{LevelID: "duel", DisableScreenShake: true})

	scene.events.CameraShake.Send(game.CameraShakeRequest{Magnitude: 1})
	scene.Update(config.TimeStep)
	assert.Zero(t, scene.cameraSystem.Trauma())

	scene.SetScreenShake(true)
	scene.events.CameraShake.Send(game.CameraShakeRequest{Magnitude: 1})
	scene.Update(config.TimeStep)
	assert.Greater(t, scene.cameraSystem.Trauma(), 0.0)
}
