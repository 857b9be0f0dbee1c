package systems

import (
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/ecs"
)

// AISystem 按 AI 模式移动实体
//
// 移动以"每帧固定距离"计算，不乘以帧间隔，依赖 60Hz 固定步长。
type AISystem struct {
	entityManager *ecs.EntityManager
}

// NewAISystem 创建 AI 系统
func NewAISystem(em *ecs.EntityManager) *AISystem {
	return &AISystem{entityManager: em}
}

// Update 推进 AI 计时器并按模式分派移动规则
func (s *AISystem) Update(dt time.Duration) {
	entities := ecs.GetEntitiesWith3[
		*components.AIComponent,
		*components.TransformComponent,
		*components.ActorComponent,
	](s.entityManager)

	for _, id := range entities {
		ai, _ := ecs.GetComponent[*components.AIComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		actor, _ := ecs.GetComponent[*components.ActorComponent](s.entityManager, id)

		ai.Timer.Tick(dt)

		switch ai.Mode {
		case components.AIModeNoMovement:
		case components.AIModeForwardBack:
			// 预留：前后往复
		case components.AIModeChargeForward:
			chargeForward(transform, actor.Speed.Length())
		case components.AIModeSinusoid:
			// 预留：正弦横向漂移
		default:
		}
	}
}

// chargeForward 沿朝向前进 distance
func chargeForward(t *components.TransformComponent, distance float64) {
	t.Position = t.Position.Add(t.Forward().Mult(distance))
}
