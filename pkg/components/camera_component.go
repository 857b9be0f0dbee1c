package components

import "github.com/jakecoffman/cp"

// CameraComponent 镜头震动状态
// 死亡请求的震动强度累加到 Trauma，随时间衰减；渲染时整体偏移 Offset。
type CameraComponent struct {
	// Trauma 当前震动强度，取值 [0, 1]
	Trauma float64

	// DecayPerSecond 每秒衰减量
	DecayPerSecond float64

	// MaxOffset Trauma 为 1 时的最大偏移（像素）
	MaxOffset float64

	// Offset 本帧镜头偏移（世界坐标）
	Offset cp.Vector
}

// 镜头震动默认参数
const (
	DefaultCameraTraumaPerShake = 0.4
	DefaultCameraDecayPerSecond = 1.5
	DefaultCameraMaxOffset      = 12.0
)
