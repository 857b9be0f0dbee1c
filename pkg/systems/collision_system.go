package systems

import (
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/logger"
)

// CollisionSystem 检测碰撞体重叠并产生伤害事件
//
// 碰撞盒中心对齐实体位置，使用 cp.BB 做轴对齐重叠检测。
// 只有阵营不同的两个碰撞体才会互相造成伤害；命中的子弹立即标记删除。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	events        *game.Events
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, events *game.Events) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		events:        events,
	}
}

type collisionBody struct {
	id       ecs.EntityID
	collider *components.ColliderComponent
	health   *components.HealthComponent
	bullet   bool
}

// Update 检测所有碰撞体两两之间的重叠
func (s *CollisionSystem) Update(dt time.Duration) {
	ids := ecs.GetEntitiesWith2[*components.ColliderComponent, *components.TransformComponent](s.entityManager)

	bodies := make([]collisionBody, 0, len(ids))
	for _, id := range ids {
		collider, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		bodies = append(bodies, collisionBody{
			id:       id,
			collider: collider,
			health:   health,
			bullet:   ecs.HasComponent[*components.BulletComponent](s.entityManager, id),
		})
	}

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := &bodies[i], &bodies[j]
			if s.entityManager.IsMarkedForDestroy(a.id) {
				break
			}
			if s.entityManager.IsMarkedForDestroy(b.id) {
				continue
			}
			if a.collider.Hitmask == b.collider.Hitmask {
				continue
			}
			// 子弹之间不互相抵消
			if a.health == nil && b.health == nil {
				continue
			}
			if !s.overlaps(a.id, b.id) {
				continue
			}
			s.resolve(a, b)
		}
	}
}

func (s *CollisionSystem) overlaps(a, b ecs.EntityID) bool {
	ta, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, a)
	tb, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, b)
	ca, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, a)
	cb, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, b)
	return ca.Bounds(ta.Position).Intersects(cb.Bounds(tb.Position))
}

// resolve 双方互相施加接触伤害
func (s *CollisionSystem) resolve(a, b *collisionBody) {
	s.applyDamage(b, a)
	s.applyDamage(a, b)

	logger.L().Debugw("[CollisionSystem] hit",
		"a", a.id, "b", b.id, "hitmaskA", a.collider.Hitmask, "hitmaskB", b.collider.Hitmask)

	if a.bullet {
		s.entityManager.DestroyEntity(a.id)
	}
	if b.bullet {
		s.entityManager.DestroyEntity(b.id)
	}
}

// applyDamage source 的接触伤害作用于 target
func (s *CollisionSystem) applyDamage(target, source *collisionBody) {
	if target.health == nil || source.collider.Damage <= 0 {
		return
	}
	s.events.Damage.Send(game.DamageEvent{
		Target: target.id,
		Source: source.id,
		Amount: source.collider.Damage,
	})
}
