package components

import (
	"errors"
	"time"

	"github.com/decker502/starrust/pkg/ecs"
	"github.com/jakecoffman/cp"
)

// ErrEmptyWaveScript 波次脚本不能为空
var ErrEmptyWaveScript = errors.New("wave script has no spawn instructions")

// Bundle 一个完整的实体组件集合
// Insert 一次性创建实体并写入全部组件，不会留下只初始化了一部分的实体
type Bundle interface {
	Insert(em *ecs.EntityManager) (ecs.EntityID, error)
}

// SpawnFunc 在指定位置构造一个完整实体 Bundle
type SpawnFunc func(position cp.Vector) Bundle

// SpawnInstruction 波次脚本中的一步，构造后不可修改
type SpawnInstruction struct {
	Label          string        // 调试用名称（如舰船类型）
	Locations      []cp.Vector   // 候选出生点，均匀随机选取
	ActiveDuration time.Duration // 本步持续时间
	SpawnInterval  time.Duration // 生成间隔
	Spawn          SpawnFunc
}

// WaveSpawnerComponent 波次生成器状态
//
// Index 取值 [0, N)，N = len(Instructions)。
// ActiveTimer 为单次计时，到期推进到下一步；IntervalTimer 为重复计时，每次到期生成一个实体。
// 切换到下一步时只重置 ActiveTimer，IntervalTimer 继续累计（沿用既有行为）。
type WaveSpawnerComponent struct {
	Name          string
	Instructions  []SpawnInstruction
	Index         int
	ActiveTimer   Timer
	IntervalTimer Timer
}

// NewWaveSpawnerComponent 创建生成器，计时器按第 0 步初始化
func NewWaveSpawnerComponent(name string, instructions []SpawnInstruction) (*WaveSpawnerComponent, error) {
	if len(instructions) == 0 {
		return nil, ErrEmptyWaveScript
	}
	first := instructions[0]
	return &WaveSpawnerComponent{
		Name:          name,
		Instructions:  instructions,
		Index:         0,
		ActiveTimer:   NewTimer(first.ActiveDuration, TimerOnce),
		IntervalTimer: NewTimer(first.SpawnInterval, TimerRepeating),
	}, nil
}

// Current 返回当前步骤
func (w *WaveSpawnerComponent) Current() *SpawnInstruction {
	return &w.Instructions[w.Index]
}
