package components

import (
	"math"

	"github.com/jakecoffman/cp"
)

// TransformComponent 实体的世界变换
// 二维平面内的位置与朝向；Rotation 为 XY 平面内的弧度角，0 表示朝向 +X
type TransformComponent struct {
	Position cp.Vector // 世界坐标（像素）
	Rotation float64   // 朝向角（弧度）
	Z        float64   // 绘制层级
	Scale    float64   // 模型缩放
}

// Forward 返回朝向的单位向量
func (t *TransformComponent) Forward() cp.Vector {
	return cp.ForAngle(t.Rotation)
}

// Rotate 将本地偏移按实体朝向旋转到世界方向
func (t *TransformComponent) Rotate(local cp.Vector) cp.Vector {
	return local.Rotate(t.Forward())
}

// 常用朝向
const (
	FacingRight = 0.0     // 玩家朝向
	FacingLeft  = math.Pi // 敌舰朝向
)
