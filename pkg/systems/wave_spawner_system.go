package systems

import (
	"math/rand"
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/logger"
)

// WaveSpawnerSystem 执行波次脚本
//
// 每个生成器实体独立推进，互不影响：
//  1. 同时推进持续计时器（单次）和生成计时器（重复）
//  2. 持续计时器到期时进入下一步；脚本执行完毕则回到第 0 步并发送一次 LevelEndEvent
//  3. 生成计时器到期时，在当前步骤的随机出生点生成一个实体
type WaveSpawnerSystem struct {
	entityManager *ecs.EntityManager
	events        *game.Events
	rng           *rand.Rand
}

// NewWaveSpawnerSystem 创建波次生成系统
// rng 为 nil 时使用当前时间作为种子
func NewWaveSpawnerSystem(em *ecs.EntityManager, events *game.Events, rng *rand.Rand) *WaveSpawnerSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &WaveSpawnerSystem{
		entityManager: em,
		events:        events,
		rng:           rng,
	}
}

// Update 推进所有生成器
func (s *WaveSpawnerSystem) Update(dt time.Duration) {
	for _, id := range ecs.GetEntitiesWith1[*components.WaveSpawnerComponent](s.entityManager) {
		spawner, _ := ecs.GetComponent[*components.WaveSpawnerComponent](s.entityManager, id)
		if len(spawner.Instructions) == 0 {
			continue
		}
		s.step(spawner, dt)
	}
}

func (s *WaveSpawnerSystem) step(spawner *components.WaveSpawnerComponent, dt time.Duration) {
	spawner.ActiveTimer.Tick(dt)
	spawner.IntervalTimer.Tick(dt)

	if spawner.ActiveTimer.JustFinished() {
		s.advance(spawner)
	}

	if spawner.IntervalTimer.JustFinished() {
		s.spawn(spawner)
	}
}

// advance 进入下一步
// 只重置持续计时器，生成计时器的累计时间保留到新步骤
func (s *WaveSpawnerSystem) advance(spawner *components.WaveSpawnerComponent) {
	spawner.Index++
	if spawner.Index < len(spawner.Instructions) {
		next := spawner.Current()
		spawner.ActiveTimer.SetDuration(next.ActiveDuration)
		spawner.IntervalTimer.SetDuration(next.SpawnInterval)
		spawner.ActiveTimer.Reset()
		logger.L().Debugw("[WaveSpawnerSystem] instruction advanced",
			"spawner", spawner.Name, "index", spawner.Index, "label", next.Label)
		return
	}

	// 回到第 0 步；持续计时器保持完成状态（单次模式不再推进），因此结束信号只发送一次
	spawner.Index = 0
	first := spawner.Current()
	spawner.ActiveTimer.SetDuration(first.ActiveDuration)
	spawner.IntervalTimer.SetDuration(first.SpawnInterval)
	s.events.LevelEnd.Send(game.LevelEndEvent{Spawner: spawner.Name})
	logger.L().Infow("[WaveSpawnerSystem] wave script finished", "spawner", spawner.Name)
}

// spawn 在当前步骤的随机出生点生成实体
func (s *WaveSpawnerSystem) spawn(spawner *components.WaveSpawnerComponent) {
	inst := spawner.Current()
	if inst.Spawn == nil || len(inst.Locations) == 0 {
		return
	}
	pos := inst.Locations[s.rng.Intn(len(inst.Locations))]

	id, err := inst.Spawn(pos).Insert(s.entityManager)
	if err != nil {
		logger.L().Errorw("[WaveSpawnerSystem] failed to spawn entity",
			"spawner", spawner.Name, "label", inst.Label, "error", err)
		return
	}
	logger.L().Debugw("[WaveSpawnerSystem] spawned",
		"spawner", spawner.Name, "label", inst.Label, "entity", id, "x", pos.X, "y", pos.Y)
}
