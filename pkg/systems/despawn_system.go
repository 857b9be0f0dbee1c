package systems

import (
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/logger"
)

// DespawnSystem 定时检查实体是否越界，越界则移除
type DespawnSystem struct {
	entityManager *ecs.EntityManager
}

// NewDespawnSystem 创建越界移除系统
func NewDespawnSystem(em *ecs.EntityManager) *DespawnSystem {
	return &DespawnSystem{entityManager: em}
}

// Update 推进越界检查计时器，到期时检查位置
func (s *DespawnSystem) Update(dt time.Duration) {
	entities := ecs.GetEntitiesWith2[
		*components.TimedOobDespawnComponent,
		*components.TransformComponent,
	](s.entityManager)

	for _, id := range entities {
		oob, _ := ecs.GetComponent[*components.TimedOobDespawnComponent](s.entityManager, id)
		if !oob.Timer.Tick(dt).JustFinished() {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if config.InDespawnBounds(transform.Position) {
			continue
		}
		s.entityManager.DestroyEntity(id)
		logger.L().Debugw("[DespawnSystem] out of bounds",
			"entity", id, "x", transform.Position.X, "y", transform.Position.Y)
	}
}
