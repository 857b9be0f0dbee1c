package entities

import (
	"errors"
	"fmt"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/types"
)

var (
	// ErrIncompleteBundle Bundle 中有字段未初始化
	ErrIncompleteBundle = errors.New("incomplete bundle")
	// ErrInvalidFaction 碰撞阵营不是友方或敌方之一
	ErrInvalidFaction = errors.New("invalid collider faction")
	// ErrUnknownShipKind 无法为该舰船类型构造 Bundle
	ErrUnknownShipKind = errors.New("unknown ship kind")
)

func incomplete(kind fmt.Stringer, field string) error {
	return fmt.Errorf("%w: %s has no %s", ErrIncompleteBundle, kind, field)
}

// ShipBundle 所有舰船共有的组件
type ShipBundle struct {
	Kind        types.ShipKind
	Transform   components.TransformComponent
	Actor       components.ActorComponent
	Collider    components.ColliderComponent
	Health      components.HealthComponent
	Weapon      components.WeaponComponent
	Model       components.ModelComponent
	CameraShake components.CameraShakeOnDeathComponent
}

// Validate 检查共有字段
// Collider.Damage 与 CameraShake.Magnitude 允许为 0（拾取物）
func (b *ShipBundle) Validate() error {
	switch {
	case b.Model.Model == "":
		return incomplete(b.Kind, "model")
	case b.Transform.Scale <= 0:
		return incomplete(b.Kind, "scale")
	case b.Actor.Speed.Length() == 0:
		return incomplete(b.Kind, "speed")
	case b.Collider.Rect.X <= 0 || b.Collider.Rect.Y <= 0:
		return incomplete(b.Kind, "collider rect")
	case !b.Collider.Hitmask.Valid():
		return fmt.Errorf("%w: %s hitmask %d", ErrInvalidFaction, b.Kind, b.Collider.Hitmask)
	case b.Collider.Damage < 0:
		return incomplete(b.Kind, "non-negative damage")
	case b.Health.HP <= 0:
		return incomplete(b.Kind, "hit points")
	case b.Health.DeathSound == "":
		return incomplete(b.Kind, "death sound")
	case b.Health.DamageSound == "":
		return incomplete(b.Kind, "damage sound")
	case b.Weapon.Cooldown.Duration <= 0:
		return incomplete(b.Kind, "weapon cooldown")
	case b.Weapon.FireSound == "":
		return incomplete(b.Kind, "fire sound")
	}
	return nil
}

// insert 写入共有组件，调用方负责先通过 Validate
func (b *ShipBundle) insert(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	transform, actor, collider := b.Transform, b.Actor, b.Collider
	health, weapon, model, shake := b.Health, b.Weapon, b.Model, b.CameraShake

	ecs.AddComponent(em, id, &transform)
	ecs.AddComponent(em, id, &actor)
	ecs.AddComponent(em, id, &collider)
	ecs.AddComponent(em, id, &health)
	ecs.AddComponent(em, id, &weapon)
	ecs.AddComponent(em, id, &model)
	ecs.AddComponent(em, id, &shake)
	ecs.AddComponent(em, id, &components.LevelEntityComponent{})
	return id
}

// PlayerShipBundle 玩家舰船
type PlayerShipBundle struct {
	ShipBundle
	Trigger components.TriggerComponent
}

// Insert 创建玩家实体
func (b PlayerShipBundle) Insert(em *ecs.EntityManager) (ecs.EntityID, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	id := b.insert(em)
	trigger := b.Trigger
	ecs.AddComponent(em, id, &trigger)
	ecs.AddComponent(em, id, &components.PlayerComponent{})
	return id, nil
}

// AIShipBundle 由 AI 控制的舰船（敌舰与拾取物）
type AIShipBundle struct {
	ShipBundle
	AI          components.AIComponent
	DeathPoints components.DeathPointsComponent
	OobDespawn  components.TimedOobDespawnComponent
}

// Validate 检查 AI 舰船的全部字段
func (b *AIShipBundle) Validate() error {
	if err := b.ShipBundle.Validate(); err != nil {
		return err
	}
	switch {
	case b.AI.Timer.Duration <= 0:
		return incomplete(b.Kind, "ai timer")
	case b.DeathPoints.Points <= 0:
		return incomplete(b.Kind, "death points")
	case b.OobDespawn.Timer.Duration <= 0:
		return incomplete(b.Kind, "out-of-bounds timer")
	}
	return nil
}

// Insert 创建 AI 舰船实体（自动射击）
func (b AIShipBundle) Insert(em *ecs.EntityManager) (ecs.EntityID, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	id := b.insert(em)
	ai, points, oob := b.AI, b.DeathPoints, b.OobDespawn
	ecs.AddComponent(em, id, &ai)
	ecs.AddComponent(em, id, &points)
	ecs.AddComponent(em, id, &oob)
	ecs.AddComponent(em, id, &components.AutoFireComponent{})
	return id, nil
}

// BulletBundle 子弹
type BulletBundle struct {
	Type       types.BulletType
	Transform  components.TransformComponent
	Actor      components.ActorComponent
	Collider   components.ColliderComponent
	Model      components.ModelComponent
	AI         components.AIComponent
	OobDespawn components.TimedOobDespawnComponent
}

// Validate 检查子弹字段
func (b *BulletBundle) Validate() error {
	switch {
	case b.Model.Model == "":
		return incomplete(b.Type, "model")
	case b.Transform.Scale <= 0:
		return incomplete(b.Type, "scale")
	case b.Actor.Speed.Length() == 0:
		return incomplete(b.Type, "speed")
	case b.Collider.Rect.X <= 0 || b.Collider.Rect.Y <= 0:
		return incomplete(b.Type, "collider rect")
	case !b.Collider.Hitmask.Valid():
		return fmt.Errorf("%w: %s hitmask %d", ErrInvalidFaction, b.Type, b.Collider.Hitmask)
	case b.Collider.Damage <= 0:
		return incomplete(b.Type, "damage")
	case b.AI.Timer.Duration <= 0:
		return incomplete(b.Type, "ai timer")
	case b.OobDespawn.Timer.Duration <= 0:
		return incomplete(b.Type, "out-of-bounds timer")
	}
	return nil
}

// Insert 创建子弹实体
func (b BulletBundle) Insert(em *ecs.EntityManager) (ecs.EntityID, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	id := em.CreateEntity()
	transform, actor, collider, model, ai, oob := b.Transform, b.Actor, b.Collider, b.Model, b.AI, b.OobDespawn
	ecs.AddComponent(em, id, &transform)
	ecs.AddComponent(em, id, &actor)
	ecs.AddComponent(em, id, &collider)
	ecs.AddComponent(em, id, &model)
	ecs.AddComponent(em, id, &ai)
	ecs.AddComponent(em, id, &oob)
	ecs.AddComponent(em, id, &components.BulletComponent{})
	ecs.AddComponent(em, id, &components.LevelEntityComponent{})
	return id, nil
}

var (
	_ components.Bundle = PlayerShipBundle{}
	_ components.Bundle = AIShipBundle{}
	_ components.Bundle = BulletBundle{}
)
