package scenes

import (
	"errors"
	"math/rand"
	"time"

	"github.com/decker502/starrust/internal/hotreload"
	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/logger"
	"github.com/decker502/starrust/pkg/systems"
)

// LevelStore 关卡配置来源，支持热重载覆盖
type LevelStore interface {
	systems.LevelLoader
	Store(level *config.LevelConfig)
}

// ScoreBoard 记录关卡结果并提供最高分
type ScoreBoard interface {
	systems.ScoreRecorder
	HighScore() int
}

// ReloadSource 提供热重载结果
type ReloadSource interface {
	Poll() []hotreload.Reload
}

// GameSceneOptions 游戏场景依赖
// Sound、Input、Scores、Reloads、Rand 均可为 nil
type GameSceneOptions struct {
	Assets  *game.AssetTable
	Levels  LevelStore
	Scores  ScoreBoard
	Sound   systems.SoundPlayer
	Input   systems.InputSource
	Reloads ReloadSource
	LevelID string
	EndMode config.LevelEndMode
	Rand    *rand.Rand

	DisableScreenShake bool
}

var (
	errNoAssets = errors.New("game scene requires an asset table")
	errNoLevels = errors.New("game scene requires a level store")
)

// GameScene 游戏主场景
//
// 每帧按固定顺序执行：
//  1. 应用状态切换请求，处理热重载结果
//  2. 仅在 InGame 时：玩家控制 → 武器 → AI → 波次生成 → 碰撞 → 生命值 → 越界移除
//  3. 关卡流程 → 音效 → 镜头
//  4. 清理标记删除的实体
type GameScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	events        *game.Events
	levels        LevelStore
	scores        ScoreBoard
	reloads       ReloadSource

	playerControlSystem *systems.PlayerControlSystem
	weaponSystem        *systems.WeaponSystem
	aiSystem            *systems.AISystem
	waveSpawnerSystem   *systems.WaveSpawnerSystem
	collisionSystem     *systems.CollisionSystem
	healthSystem        *systems.HealthSystem
	despawnSystem       *systems.DespawnSystem
	levelSystem         *systems.LevelSystem
	audioSystem         *systems.AudioSystem
	cameraSystem        *systems.CameraSystem
}

// NewGameScene 创建游戏场景
// 场景创建后处于 gs 的当前状态，进入 InGame 时才开始关卡
func NewGameScene(gs *game.GameState, opts GameSceneOptions) (*GameScene, error) {
	if opts.Assets == nil {
		return nil, errNoAssets
	}
	if opts.Levels == nil {
		return nil, errNoLevels
	}
	if opts.LevelID == "" {
		opts.LevelID = config.DefaultLevelID
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	em := ecs.NewEntityManager()
	events := game.NewEvents()

	s := &GameScene{
		entityManager: em,
		gameState:     gs,
		events:        events,
		levels:        opts.Levels,
		scores:        opts.Scores,
		reloads:       opts.Reloads,

		playerControlSystem: systems.NewPlayerControlSystem(em, opts.Input),
		weaponSystem:        systems.NewWeaponSystem(em, events, opts.Assets.Models),
		aiSystem:            systems.NewAISystem(em),
		waveSpawnerSystem:   systems.NewWaveSpawnerSystem(em, events, rng),
		collisionSystem:     systems.NewCollisionSystem(em, events),
		healthSystem:        systems.NewHealthSystem(em, gs, events),
		despawnSystem:       systems.NewDespawnSystem(em),
		levelSystem:         systems.NewLevelSystem(em, gs, events, opts.Assets, opts.Levels, opts.Scores, opts.LevelID, opts.EndMode),
		audioSystem:         systems.NewAudioSystem(events, opts.Sound),
		cameraSystem:        systems.NewCameraSystem(em, events, rng),
	}

	s.cameraSystem.SetEnabled(!opts.DisableScreenShake)

	logger.L().Infow("[GameScene] created", "level", opts.LevelID, "endMode", opts.EndMode)
	return s, nil
}

// Update 推进一帧
func (s *GameScene) Update(dt time.Duration) {
	s.gameState.ApplyTransitions()
	s.applyReloads()

	if s.gameState.App() == game.AppStateInGame {
		s.playerControlSystem.Update(dt)
		s.weaponSystem.Update(dt)
		s.aiSystem.Update(dt)
		s.waveSpawnerSystem.Update(dt)
		s.collisionSystem.Update(dt)
		s.healthSystem.Update(dt)
		s.despawnSystem.Update(dt)
	}

	s.levelSystem.Update(dt)
	s.audioSystem.Update(dt)
	s.cameraSystem.Update(dt)

	s.entityManager.RemoveMarkedEntities()
}

// StartLevel 请求进入 InGame 开始关卡
func (s *GameScene) StartLevel() {
	s.gameState.RequestApp(game.AppStateInGame)
}

// TogglePause 在 InGame 与 Paused 之间切换
// 离开 InGame 会移除当前关卡，恢复时重新开始
func (s *GameScene) TogglePause() {
	switch s.gameState.App() {
	case game.AppStateInGame:
		s.gameState.RequestApp(game.AppStatePaused)
	case game.AppStatePaused:
		s.gameState.RequestApp(game.AppStateInGame)
	}
}

// SetScreenShake 运行时开关镜头震动
func (s *GameScene) SetScreenShake(enabled bool) {
	s.cameraSystem.SetEnabled(enabled)
}

// SaveOnExit 窗口关闭时调用，关卡进行中则按当前分数记录一次
func (s *GameScene) SaveOnExit() bool {
	if s.scores == nil || s.gameState.App() != game.AppStateInGame || s.levelSystem.Ended() {
		return true
	}
	record, best, err := s.scores.RecordRun(s.LevelID(), s.gameState.Score, time.Now())
	if err != nil {
		logger.L().Warnw("[GameScene] failed to record unfinished run", "error", err)
		return false
	}
	logger.L().Infow("[GameScene] unfinished run recorded", "level", record.LevelID, "score", record.Score, "best", best)
	return true
}

// EntityManager 场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// GameState 场景使用的游戏状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// LevelID 当前关卡ID
func (s *GameScene) LevelID() string {
	return s.levelSystem.LevelID()
}

// applyReloads 将热重载结果写入关卡仓库，下次开始关卡时生效
func (s *GameScene) applyReloads() {
	if s.reloads == nil {
		return
	}
	for _, r := range s.reloads.Poll() {
		if r.Err != nil {
			logger.L().Warnw("[GameScene] level reload failed", "path", r.Path, "error", r.Err)
			continue
		}
		s.levels.Store(r.Level)
		logger.L().Infow("[GameScene] level reloaded", "path", r.Path, "level", r.Level.ID,
			"current", r.Level.ID == s.levelSystem.LevelID())
	}
}
