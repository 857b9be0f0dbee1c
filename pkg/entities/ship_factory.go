package entities

import (
	"fmt"
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/types"
	"github.com/jakecoffman/cp"
)

// 舰船数值
const (
	PlayerHP             = 20
	PlayerFireCooldown   = 0.15 // 秒
	EnemyFireCooldown    = 0.5  // 秒
	EnemyDeathPoints     = 20
	StarDeathPoints      = 1
	SpacePlatformHP      = 100
	OobCheckInterval     = 0.05 // 秒
	DisabledWeaponPeriod = 300 * time.Second
)

func newTransform(pos cp.Vector, rotation, scale float64) components.TransformComponent {
	return components.TransformComponent{
		Position: pos,
		Rotation: rotation,
		Z:        config.ActorZ,
		Scale:    scale,
	}
}

// disableWeapon 冷却改为单次 + 超长时长，实际上不再开火
func disableWeapon(w *components.WeaponComponent) {
	w.Cooldown.SetMode(components.TimerOnce)
	w.Cooldown.SetDuration(DisabledWeaponPeriod)
}

// PlayerShip 玩家舰船
// 武器冷却初始暂停，首次按下射击键时才开始计时
func PlayerShip(clips game.AudioClips, models game.SceneModels, pos cp.Vector) PlayerShipBundle {
	bundle := PlayerShipBundle{
		ShipBundle: ShipBundle{
			Kind:      types.ShipPlayer,
			Transform: newTransform(pos, components.FacingRight, config.AssetScale),
			Actor:     components.ActorComponent{Speed: cp.Vector{X: 6, Y: 6}},
			Collider: components.ColliderComponent{
				Rect:    cp.Vector{X: 30, Y: 30},
				Hitmask: components.FactionAlly,
				Damage:  1,
			},
			Health: components.HealthComponent{
				HP:          PlayerHP,
				DeathSound:  clips.LightExplosion,
				DamageSound: clips.LightPow,
			},
			Weapon:      components.NewWeapon(types.BulletStandard, cp.Vector{X: 20, Y: -10}, clips.LaserShot, PlayerFireCooldown),
			Model:       components.ModelComponent{Model: models.DefaultPlayer},
			CameraShake: components.CameraShakeOnDeathComponent{Magnitude: components.DefaultCameraShakeMagnitude},
		},
	}
	bundle.Weapon.Cooldown.Pause()
	return bundle
}

// DefaultEnemyShip 默认敌舰，其余敌舰变体都以它为模板
func DefaultEnemyShip(clips game.AudioClips, models game.SceneModels, pos cp.Vector) AIShipBundle {
	return AIShipBundle{
		ShipBundle: ShipBundle{
			Kind:      types.ShipDefaultEnemy,
			Transform: newTransform(pos, components.FacingLeft, config.EnemyScale),
			Actor:     components.ActorComponent{Speed: cp.Vector{X: 1.5, Y: 1.5}},
			Collider: components.ColliderComponent{
				Rect:    cp.Vector{X: 35, Y: 35},
				Hitmask: components.FactionEnemy,
				Damage:  1,
			},
			Health: components.HealthComponent{
				HP:          1,
				DeathSound:  clips.LightExplosion,
				DamageSound: clips.NoSound,
			},
			Weapon:      components.NewWeapon(types.BulletStandardEnemy, cp.Vector{X: 20, Y: 0}, clips.LaserShot, EnemyFireCooldown),
			Model:       components.ModelComponent{Model: models.DefaultEnemy},
			CameraShake: components.CameraShakeOnDeathComponent{Magnitude: components.DefaultCameraShakeMagnitude},
		},
		AI:          components.NewAIComponent(components.AIModeChargeForward),
		DeathPoints: components.DeathPointsComponent{Points: EnemyDeathPoints},
		OobDespawn: components.TimedOobDespawnComponent{
			Timer: components.TimerFromSeconds(OobCheckInterval, components.TimerRepeating),
		},
	}
}

// RaptorSineVariant 正弦移动的敌舰
func RaptorSineVariant(clips game.AudioClips, models game.SceneModels, pos cp.Vector) AIShipBundle {
	variant := DefaultEnemyShip(clips, models, pos)
	variant.Kind = types.ShipRaptorSine
	variant.AI.Mode = components.AIModeSinusoid
	return variant
}

// JetCharger 高速冲锋机，不开火
func JetCharger(clips game.AudioClips, models game.SceneModels, pos cp.Vector) AIShipBundle {
	variant := DefaultEnemyShip(clips, models, pos)
	variant.Kind = types.ShipJetCharger
	variant.Model.Model = models.JetCharger
	variant.Actor.Speed = cp.Vector{X: 8, Y: 8}
	variant.AI.Mode = components.AIModeChargeForward
	disableWeapon(&variant.Weapon)
	return variant
}

// SpacePlatform 高血量的太空平台，不开火
func SpacePlatform(clips game.AudioClips, models game.SceneModels, pos cp.Vector) AIShipBundle {
	variant := DefaultEnemyShip(clips, models, pos)
	variant.Kind = types.ShipSpacePlatform
	variant.Model.Model = models.SpacePlatform
	variant.Actor.Speed = cp.Vector{X: 2, Y: 2}
	variant.Health.HP = SpacePlatformHP
	variant.Collider.Rect = cp.Vector{X: 210, Y: 40}
	variant.AI.Mode = components.AIModeChargeForward
	disableWeapon(&variant.Weapon)
	return variant
}

// Star 星星拾取物
// 被玩家碰到时"死亡"，播放金币音效并奖励 1 分，不造成伤害也不震动镜头
func Star(clips game.AudioClips, models game.SceneModels, pos cp.Vector) AIShipBundle {
	variant := DefaultEnemyShip(clips, models, pos)
	variant.Kind = types.ShipStar
	variant.CameraShake.Magnitude = 0
	variant.Model.Model = models.PowerupStar
	variant.Collider.Damage = 0
	variant.DeathPoints.Points = StarDeathPoints
	variant.Actor.Speed = cp.Vector{X: 6, Y: 6}
	variant.Health.HP = 1
	variant.Health.DeathSound = clips.CoinLarry
	variant.Collider.Rect = cp.Vector{X: 10, Y: 10}
	variant.AI.Mode = components.AIModeChargeForward
	disableWeapon(&variant.Weapon)
	return variant
}

// AIShipFactory 构造 AI 舰船的函数
type AIShipFactory func(clips game.AudioClips, models game.SceneModels, pos cp.Vector) AIShipBundle

var aiShipFactories = map[types.ShipKind]AIShipFactory{
	types.ShipDefaultEnemy:  DefaultEnemyShip,
	types.ShipRaptorSine:    RaptorSineVariant,
	types.ShipJetCharger:    JetCharger,
	types.ShipSpacePlatform: SpacePlatform,
	types.ShipStar:          Star,
}

// AIShipFactoryFor 返回舰船类型对应的工厂
func AIShipFactoryFor(kind types.ShipKind) (AIShipFactory, error) {
	factory, ok := aiShipFactories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShipKind, kind)
	}
	return factory, nil
}
