package systems

import (
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/logger"
)

// HealthSystem 消费伤害事件，扣减生命值并处理死亡
//
// 死亡处理对同一实体只执行一次：
// HP 归零后实体被标记删除，同一帧内后续针对它的伤害事件全部忽略，
// 因此死亡分数只会累加一次。
type HealthSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	events        *game.Events
}

// NewHealthSystem 创建生命值系统
func NewHealthSystem(em *ecs.EntityManager, gs *game.GameState, events *game.Events) *HealthSystem {
	return &HealthSystem{
		entityManager: em,
		gameState:     gs,
		events:        events,
	}
}

// Update 处理本帧全部伤害事件
func (s *HealthSystem) Update(dt time.Duration) {
	for _, ev := range s.events.Damage.Drain() {
		s.apply(ev)
	}
}

func (s *HealthSystem) apply(ev game.DamageEvent) {
	if ev.Amount <= 0 || !s.entityManager.IsAlive(ev.Target) {
		return
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, ev.Target)
	if !ok || health.HP <= 0 {
		return
	}

	health.HP -= ev.Amount
	if health.HP > 0 {
		s.events.PlaySound(health.DamageSound)
		return
	}

	health.HP = 0
	s.die(ev.Target, health)
}

// die 移除实体，播放死亡音效，请求镜头震动并结算分数
func (s *HealthSystem) die(id ecs.EntityID, health *components.HealthComponent) {
	s.entityManager.DestroyEntity(id)
	s.events.PlaySound(health.DeathSound)

	if shake, ok := ecs.GetComponent[*components.CameraShakeOnDeathComponent](s.entityManager, id); ok && shake.Magnitude > 0 {
		s.events.CameraShake.Send(game.CameraShakeRequest{Magnitude: shake.Magnitude})
	}

	points := 0
	if dp, ok := ecs.GetComponent[*components.DeathPointsComponent](s.entityManager, id); ok {
		points = dp.Points
		s.gameState.AddScore(points)
	}

	logger.L().Debugw("[HealthSystem] entity destroyed",
		"entity", id, "points", points, "score", s.gameState.Score)
}
