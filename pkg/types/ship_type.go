// Package types 定义共享的基础类型
package types

import "fmt"

// ShipKind 定义舰船角色类型
// 关卡波次脚本通过字符串名称引用舰船类型（见 ParseShipKind）
type ShipKind int

const (
	// ShipUnknown 未知类型
	ShipUnknown ShipKind = iota

	ShipPlayer        // 玩家舰船
	ShipDefaultEnemy  // 默认敌舰（直线冲锋 + 自动射击）
	ShipRaptorSine    // 正弦移动变体
	ShipJetCharger    // 高速冲锋机（武器禁用）
	ShipSpacePlatform // 太空平台（高血量、大碰撞盒）
	ShipStar          // 星星拾取物
)

var shipKindNames = map[ShipKind]string{
	ShipPlayer:        "player",
	ShipDefaultEnemy:  "default_enemy",
	ShipRaptorSine:    "raptor_sine",
	ShipJetCharger:    "jet_charger",
	ShipSpacePlatform: "space_platform",
	ShipStar:          "star",
}

// String 返回舰船类型的配置名称
func (k ShipKind) String() string {
	if name, ok := shipKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseShipKind 将配置名称解析为 ShipKind
func ParseShipKind(name string) (ShipKind, error) {
	for kind, n := range shipKindNames {
		if n == name {
			return kind, nil
		}
	}
	return ShipUnknown, fmt.Errorf("unknown ship kind %q", name)
}

// BulletType 子弹类型
type BulletType int

const (
	BulletStandard      BulletType = iota // 玩家标准子弹
	BulletStandardEnemy                   // 敌方标准子弹（仅外观不同）
)

// String 返回子弹类型名称
func (b BulletType) String() string {
	switch b {
	case BulletStandard:
		return "standard"
	case BulletStandardEnemy:
		return "standard_enemy"
	default:
		return "unknown"
	}
}
