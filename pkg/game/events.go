package game

import (
	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/types"
	"github.com/jakecoffman/cp"
)

// EventQueue 单帧事件队列
// 生产者 Send，消费者 Drain 读取并清空，未消费的事件会保留到下一帧
type EventQueue[T any] struct {
	items []T
}

// Send 追加事件
func (q *EventQueue[T]) Send(event T) {
	q.items = append(q.items, event)
}

// Drain 取出全部事件并清空队列
func (q *EventQueue[T]) Drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len 当前待处理事件数
func (q *EventQueue[T]) Len() int {
	return len(q.items)
}

// Empty 队列是否为空
func (q *EventQueue[T]) Empty() bool {
	return len(q.items) == 0
}

// Clear 丢弃全部事件
func (q *EventQueue[T]) Clear() {
	q.items = nil
}

// LevelEndEvent 波次脚本执行完毕
type LevelEndEvent struct {
	Spawner string
}

// WeaponFiredEvent 武器开火，由子弹生成逻辑消费
type WeaponFiredEvent struct {
	Shooter    ecs.EntityID
	BulletType types.BulletType
	Position   cp.Vector // 枪口世界坐标
	Rotation   float64   // 子弹朝向，继承射击者
	Hitmask    components.Faction
}

// DamageEvent 对目标造成伤害
type DamageEvent struct {
	Target ecs.EntityID
	Source ecs.EntityID
	Amount int
}

// SoundRequest 播放音效请求
type SoundRequest struct {
	Sound types.SoundHandle
}

// CameraShakeRequest 镜头震动请求
type CameraShakeRequest struct {
	Magnitude float64
}

// Events 所有系统共享的事件队列集合
type Events struct {
	LevelEnd    EventQueue[LevelEndEvent]
	WeaponFired EventQueue[WeaponFiredEvent]
	Damage      EventQueue[DamageEvent]
	Sound       EventQueue[SoundRequest]
	CameraShake EventQueue[CameraShakeRequest]
}

// NewEvents 创建空事件集合
func NewEvents() *Events {
	return &Events{}
}

// PlaySound 便捷方法：空句柄忽略
func (e *Events) PlaySound(sound types.SoundHandle) {
	if sound == "" {
		return
	}
	e.Sound.Send(SoundRequest{Sound: sound})
}

// Reset 清空全部队列（关卡切换时调用）
func (e *Events) Reset() {
	e.LevelEnd.Clear()
	e.WeaponFired.Clear()
	e.Damage.Clear()
	e.Sound.Clear()
	e.CameraShake.Clear()
}
