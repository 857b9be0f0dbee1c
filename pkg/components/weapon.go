package components

import (
	"github.com/decker502/starrust/pkg/types"
	"github.com/jakecoffman/cp"
)

// WeaponComponent 武器数据
//
// Cooldown 为重复计时器：每次到期即可射击一次。
// 玩家武器初始暂停，由射击输入解除暂停；敌舰武器初始即激活（自动射击）。
// 禁用武器的做法是将冷却改为单次模式并设置超长时长。
type WeaponComponent struct {
	BulletType types.BulletType
	Offset     cp.Vector // 枪口相对实体的本地偏移
	FireSound  types.SoundHandle
	Cooldown   Timer
}

// NewWeapon 创建冷却为重复模式的武器
func NewWeapon(bulletType types.BulletType, offset cp.Vector, fireSound types.SoundHandle, cooldownSeconds float64) WeaponComponent {
	return WeaponComponent{
		BulletType: bulletType,
		Offset:     offset,
		FireSound:  fireSound,
		Cooldown:   TimerFromSeconds(cooldownSeconds, TimerRepeating),
	}
}

// AutoFireComponent 自动射击标记
type AutoFireComponent struct{}

// TriggerComponent 手动射击的扳机状态（玩家）
type TriggerComponent struct {
	Held bool
}
