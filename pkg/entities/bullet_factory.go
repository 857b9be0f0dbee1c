package entities

import (
	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/types"
	"github.com/jakecoffman/cp"
)

// StandardBullet 玩家标准子弹
// 位置、朝向和阵营取自开火事件
func StandardBullet(models game.SceneModels, fired game.WeaponFiredEvent) BulletBundle {
	return BulletBundle{
		Type:      types.BulletStandard,
		Transform: newTransform(fired.Position, fired.Rotation, config.AssetScale),
		Actor:     components.ActorComponent{Speed: cp.Vector{X: 10, Y: 10}},
		Collider: components.ColliderComponent{
			Rect:    cp.Vector{X: 16, Y: 6},
			Hitmask: fired.Hitmask,
			Damage:  1,
		},
		Model: components.ModelComponent{Model: models.DefaultBullet},
		AI:    components.NewAIComponent(components.AIModeChargeForward),
		OobDespawn: components.TimedOobDespawnComponent{
			Timer: components.TimerFromSeconds(OobCheckInterval, components.TimerRepeating),
		},
	}
}

// StandardEnemyBullet 敌方子弹，仅模型不同
func StandardEnemyBullet(models game.SceneModels, fired game.WeaponFiredEvent) BulletBundle {
	bullet := StandardBullet(models, fired)
	bullet.Type = types.BulletStandardEnemy
	bullet.Model.Model = models.DefaultEnemyBullet
	return bullet
}

// BulletFor 按开火事件中的子弹类型构造子弹
func BulletFor(models game.SceneModels, fired game.WeaponFiredEvent) BulletBundle {
	switch fired.BulletType {
	case types.BulletStandardEnemy:
		return StandardEnemyBullet(models, fired)
	default:
		return StandardBullet(models, fired)
	}
}
