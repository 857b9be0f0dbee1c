package components

import (
	"math"
	"time"
)

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerOnce 单次计时：到期后保持完成状态，直到 Reset
	TimerOnce TimerMode = iota
	// TimerRepeating 重复计时：每次到期后自动回卷，余量保留到下一周期
	TimerRepeating
)

// Timer 通用倒计时器
//
// 被多个组件内嵌使用（AI 计时、武器冷却、越界检查、波次生成）。
// 以 time.Duration 累计。固定步长 time.Second/60 不能被纳秒整除，每帧少计约 0.67ns，
// 因此到期判定允许 Duration 的百万分之一的误差：N 帧恰好等于 N/60 秒。
//
// 语义：
//   - Tick(delta) 推进计时
//   - Finished() 单次模式下到期后一直为 true；重复模式下仅在本次 Tick 回卷时为 true
//   - JustFinished() 仅在本次 Tick 发生到期时为 true（边沿触发）
//   - 暂停时 Tick 不推进，也不会触发到期
type Timer struct {
	Duration time.Duration
	Mode     TimerMode

	elapsed               time.Duration
	paused                bool
	finished              bool
	timesFinishedThisTick int
}

// expiryToleranceDivisor 到期判定容差 = Duration / expiryToleranceDivisor
const expiryToleranceDivisor = 1_000_000

// NewTimer 创建计时器
func NewTimer(duration time.Duration, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// TimerFromSeconds 以秒为单位创建计时器
func TimerFromSeconds(seconds float64, mode TimerMode) Timer {
	return NewTimer(time.Duration(math.Round(seconds*float64(time.Second))), mode)
}

// Tick 推进计时器并返回自身，便于链式判断
func (t *Timer) Tick(delta time.Duration) *Timer {
	if t.paused {
		t.timesFinishedThisTick = 0
		if t.Mode == TimerRepeating {
			t.finished = false
		}
		return t
	}

	// 单次模式已完成后不再推进
	if t.Mode != TimerRepeating && t.finished {
		t.timesFinishedThisTick = 0
		return t
	}

	t.elapsed += delta
	tolerance := t.Duration / expiryToleranceDivisor
	t.finished = t.elapsed+tolerance >= t.Duration

	if !t.finished {
		t.timesFinishedThisTick = 0
		return t
	}

	if t.Mode == TimerRepeating {
		if t.Duration > 0 {
			n := (t.elapsed + tolerance) / t.Duration
			t.timesFinishedThisTick = int(n)
			// 容差内提前到期时余量为负，从 0 开始下一周期
			t.elapsed = max(0, t.elapsed-n*t.Duration)
		} else {
			t.timesFinishedThisTick = 1
			t.elapsed = 0
		}
	} else {
		t.timesFinishedThisTick = 1
		t.elapsed = t.Duration
	}
	return t
}

// Finished 计时器是否处于完成状态
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished 本次 Tick 是否发生了到期
func (t *Timer) JustFinished() bool {
	return t.timesFinishedThisTick > 0
}

// TimesFinishedThisTick 本次 Tick 内到期的次数（重复模式下大步长可能多次到期）
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinishedThisTick
}

// Elapsed 当前周期已经过的时间
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining 距离下一次到期的剩余时间
func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.elapsed
}

// SetDuration 修改周期长度，不影响已过时间
func (t *Timer) SetDuration(d time.Duration) {
	t.Duration = d
}

// SetMode 修改模式
// 从重复切换为单次且已过时间超过新周期时，立即视为完成
func (t *Timer) SetMode(mode TimerMode) {
	if t.Mode == TimerRepeating && mode != TimerRepeating && t.finished {
		t.elapsed = 0
		t.finished = t.elapsed >= t.Duration
	}
	t.Mode = mode
}

// Reset 清零已过时间和完成状态，暂停状态保持不变
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinishedThisTick = 0
}

// Pause 暂停计时
func (t *Timer) Pause() {
	t.paused = true
}

// Unpause 恢复计时
func (t *Timer) Unpause() {
	t.paused = false
}

// Paused 是否处于暂停状态
func (t *Timer) Paused() bool {
	return t.paused
}
