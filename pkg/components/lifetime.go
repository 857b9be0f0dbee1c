package components

// TimedOobDespawnComponent 定时越界检查
// 计时器每次到期时检查实体位置，超出游戏区域（含边距）则移除
type TimedOobDespawnComponent struct {
	Timer Timer
}
