package components

import "github.com/decker502/starrust/pkg/types"

// HealthComponent 存储实体的生命值信息
// HP 降为 0 时实体被移除
type HealthComponent struct {
	HP          int               // 当前生命值（>= 0）
	DeathSound  types.SoundHandle // 死亡（或被拾取）时播放的音效
	DamageSound types.SoundHandle // 受到伤害时播放的音效
}

// DeathPointsComponent 死亡时奖励给玩家的分数
type DeathPointsComponent struct {
	Points int
}

// CameraShakeOnDeathComponent 死亡时请求的镜头震动强度
type CameraShakeOnDeathComponent struct {
	Magnitude float64
}

// DefaultCameraShakeMagnitude 默认镜头震动强度
const DefaultCameraShakeMagnitude = 1.0
