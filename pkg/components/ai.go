package components

import "time"

// AIMode AI 移动模式
type AIMode int

const (
	// AIModeNoMovement 不移动
	AIModeNoMovement AIMode = iota
	// AIModeForwardBack 前后往复（预留，当前不移动）
	AIModeForwardBack
	// AIModeChargeForward 沿朝向匀速冲锋
	AIModeChargeForward
	// AIModeSinusoid 正弦横向漂移（预留，当前不移动）
	AIModeSinusoid
)

// String 返回模式名称
func (m AIMode) String() string {
	switch m {
	case AIModeNoMovement:
		return "no_movement"
	case AIModeForwardBack:
		return "forward_back"
	case AIModeChargeForward:
		return "charge_forward"
	case AIModeSinusoid:
		return "sinusoid"
	default:
		return "unknown"
	}
}

// AIComponent 每个移动实体的 AI 状态
// Timer 每帧累加，供后续正弦相位等计算使用
type AIComponent struct {
	Mode  AIMode
	Timer Timer
}

// AIPhasePeriod AI 计时器的回卷周期
const AIPhasePeriod = 10 * time.Second

// NewAIComponent 创建指定模式的 AI 组件
func NewAIComponent(mode AIMode) AIComponent {
	return AIComponent{
		Mode:  mode,
		Timer: NewTimer(AIPhasePeriod, TimerRepeating),
	}
}
