package systems

import (
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/entities"
	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/logger"
)

// WeaponSystem 推进武器冷却、开火并生成子弹
//
// 开火规则：
//   - 玩家（TriggerComponent）：首次按下扳机时解除冷却暂停并立即开火，
//     按住期间冷却每次到期开火一次，松开后冷却重新暂停
//   - 自动射击（AutoFireComponent）：冷却每次到期开火一次
//   - 其他武器只推进冷却
//
// 开火产生 WeaponFiredEvent，同一帧内由本系统消费并生成子弹。
type WeaponSystem struct {
	entityManager *ecs.EntityManager
	events        *game.Events
	models        game.SceneModels
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(em *ecs.EntityManager, events *game.Events, models game.SceneModels) *WeaponSystem {
	return &WeaponSystem{
		entityManager: em,
		events:        events,
		models:        models,
	}
}

// Update 处理所有武器，然后为开火事件生成子弹
func (s *WeaponSystem) Update(dt time.Duration) {
	armed := ecs.GetEntitiesWith3[
		*components.WeaponComponent,
		*components.TransformComponent,
		*components.ColliderComponent,
	](s.entityManager)

	for _, id := range armed {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		weapon, _ := ecs.GetComponent[*components.WeaponComponent](s.entityManager, id)

		if trigger, ok := ecs.GetComponent[*components.TriggerComponent](s.entityManager, id); ok {
			if s.updateTrigger(weapon, trigger, dt) {
				s.fire(id, weapon)
			}
			continue
		}

		weapon.Cooldown.Tick(dt)
		if ecs.HasComponent[*components.AutoFireComponent](s.entityManager, id) && weapon.Cooldown.JustFinished() {
			s.fire(id, weapon)
		}
	}

	s.spawnBullets()
}

// updateTrigger 推进玩家武器，返回本帧是否开火
func (s *WeaponSystem) updateTrigger(weapon *components.WeaponComponent, trigger *components.TriggerComponent, dt time.Duration) bool {
	cooldown := &weapon.Cooldown
	if !trigger.Held {
		cooldown.Pause()
		return false
	}
	if cooldown.Paused() {
		cooldown.Unpause()
		cooldown.Reset()
		return true
	}
	return cooldown.Tick(dt).JustFinished()
}

// fire 在枪口位置发出开火事件
func (s *WeaponSystem) fire(id ecs.EntityID, weapon *components.WeaponComponent) {
	transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	collider, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)

	s.events.WeaponFired.Send(game.WeaponFiredEvent{
		Shooter:    id,
		BulletType: weapon.BulletType,
		Position:   transform.Position.Add(transform.Rotate(weapon.Offset)),
		Rotation:   transform.Rotation,
		Hitmask:    collider.Hitmask,
	})
	s.events.PlaySound(weapon.FireSound)
}

func (s *WeaponSystem) spawnBullets() {
	for _, fired := range s.events.WeaponFired.Drain() {
		if _, err := entities.BulletFor(s.models, fired).Insert(s.entityManager); err != nil {
			logger.L().Errorw("[WeaponSystem] failed to spawn bullet",
				"shooter", fired.Shooter, "bullet", fired.BulletType, "error", err)
		}
	}
}
