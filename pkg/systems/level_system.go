package systems

import (
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/entities"
	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/logger"
)

// LevelLoader 按ID加载关卡配置
type LevelLoader interface {
	LoadLevel(id string) (*config.LevelConfig, error)
}

// ScoreRecorder 记录关卡结果
type ScoreRecorder interface {
	RecordRun(levelID string, score int, finishedAt time.Time) (game.ScoreRecord, bool, error)
}

// LevelSystem 关卡流程控制
//
// 职责：
//   - 进入 InGame 时加载关卡，为每个波次脚本创建一个生成器并生成玩家
//   - 收到 LevelEndEvent 时切换到 LevelEnd 菜单，并返回 Menu（或 Paused）
//   - 离开 InGame 时移除所有生成器和关卡实体
//
// 同一关卡内只处理第一个结束信号，之后的信号在出队后丢弃。
type LevelSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	events        *game.Events
	assets        *game.AssetTable
	loader        LevelLoader
	recorder      ScoreRecorder

	levelID string
	endMode config.LevelEndMode
	now     func() time.Time

	ended bool
}

// NewLevelSystem 创建关卡系统
// recorder 可以为 nil（不记录得分）
func NewLevelSystem(
	em *ecs.EntityManager,
	gs *game.GameState,
	events *game.Events,
	assets *game.AssetTable,
	loader LevelLoader,
	recorder ScoreRecorder,
	levelID string,
	endMode config.LevelEndMode,
) *LevelSystem {
	if endMode == "" {
		endMode = config.LevelEndMenu
	}
	return &LevelSystem{
		entityManager: em,
		gameState:     gs,
		events:        events,
		assets:        assets,
		loader:        loader,
		recorder:      recorder,
		levelID:       levelID,
		endMode:       endMode,
		now:           time.Now,
	}
}

// LevelID 当前关卡ID
func (s *LevelSystem) LevelID() string {
	return s.levelID
}

// Ended 当前关卡是否已经处理过结束信号
func (s *LevelSystem) Ended() bool {
	return s.ended
}

// SetLevel 切换关卡，下次进入 InGame 时生效
func (s *LevelSystem) SetLevel(id string) {
	s.levelID = id
}

// Update 处理进入/退出钩子和关卡结束信号
// 必须在本帧 ApplyTransitions 之后调用
func (s *LevelSystem) Update(dt time.Duration) {
	if s.gameState.Exited(game.AppStateInGame) {
		s.teardown()
	}
	if s.gameState.Entered(game.AppStateInGame) {
		s.start()
	}

	if s.events.LevelEnd.Empty() {
		return
	}
	ended := s.events.LevelEnd.Drain()
	if s.ended || s.gameState.App() != game.AppStateInGame {
		return
	}
	s.finish(ended[0])
}

// start 加载关卡并创建生成器与玩家
func (s *LevelSystem) start() {
	s.ended = false
	s.gameState.ResetScore()
	s.events.Reset()
	s.gameState.RequestMenu(game.MenuStateDisabled)

	level, err := s.loader.LoadLevel(s.levelID)
	if err != nil {
		logger.L().Errorw("[LevelSystem] failed to load level", "level", s.levelID, "error", err)
		s.gameState.RequestApp(game.AppStateMenu)
		return
	}

	spawners := 0
	for _, sc := range level.Spawners {
		spawner, err := entities.NewWaveSpawner(sc, s.assets)
		if err != nil {
			logger.L().Errorw("[LevelSystem] invalid wave script", "level", level.ID, "spawner", sc.Name, "error", err)
			continue
		}
		id := s.entityManager.CreateEntity()
		ecs.AddComponent(s.entityManager, id, spawner)
		ecs.AddComponent(s.entityManager, id, &components.LevelEntityComponent{})
		spawners++
	}

	player := entities.PlayerShip(s.assets.Audio, s.assets.Models, config.PlayerSpawnPosition)
	if _, err := player.Insert(s.entityManager); err != nil {
		logger.L().Errorw("[LevelSystem] failed to spawn player", "error", err)
	}

	logger.L().Infow("[LevelSystem] level started", "level", level.ID, "name", level.Name, "spawners", spawners)
}

// teardown 移除生成器与所有关卡实体
func (s *LevelSystem) teardown() {
	removed := 0
	for _, id := range ecs.GetEntitiesWith1[*components.WaveSpawnerComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
		removed++
	}
	for _, id := range ecs.GetEntitiesWith1[*components.LevelEntityComponent](s.entityManager) {
		if !s.entityManager.IsMarkedForDestroy(id) {
			s.entityManager.DestroyEntity(id)
			removed++
		}
	}
	logger.L().Infow("[LevelSystem] level torn down", "level", s.levelID, "removed", removed)
}

// finish 处理关卡结束：切换状态并记录得分
func (s *LevelSystem) finish(ev game.LevelEndEvent) {
	s.ended = true
	s.gameState.RequestMenu(game.MenuStateLevelEnd)
	if s.endMode == config.LevelEndPaused {
		s.gameState.RequestApp(game.AppStatePaused)
	} else {
		s.gameState.RequestApp(game.AppStateMenu)
	}

	logger.L().Infow("[LevelSystem] level ended",
		"level", s.levelID, "spawner", ev.Spawner, "score", s.gameState.Score, "mode", s.endMode)

	if s.recorder == nil {
		return
	}
	if _, newBest, err := s.recorder.RecordRun(s.levelID, s.gameState.Score, s.now()); err != nil {
		logger.L().Warnw("[LevelSystem] failed to record run", "error", err)
	} else if newBest {
		logger.L().Infow("[LevelSystem] new high score", "score", s.gameState.Score)
	}
}
