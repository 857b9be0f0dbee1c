package components

import "github.com/jakecoffman/cp"

// Faction 阵营位掩码
// 碰撞过滤依赖此字段：只有阵营不同的碰撞体才会互相造成伤害
type Faction uint8

const (
	FactionAlly  Faction = 1 // 友方（玩家及其子弹）
	FactionEnemy Faction = 2 // 敌方
)

// Valid 阵营必须恰好是两个已定义阵营之一
func (f Faction) Valid() bool {
	return f == FactionAlly || f == FactionEnemy
}

// ColliderComponent 定义实体的碰撞区域、阵营和接触伤害
// 碰撞盒中心对齐实体位置
type ColliderComponent struct {
	Rect    cp.Vector // 碰撞盒宽高（像素）
	Hitmask Faction   // 所属阵营
	Damage  int       // 接触时对对方造成的伤害
}

// Bounds 返回以 center 为中心的轴对齐包围盒
func (c *ColliderComponent) Bounds(center cp.Vector) cp.BB {
	return cp.NewBBForExtents(center, c.Rect.X/2, c.Rect.Y/2)
}
