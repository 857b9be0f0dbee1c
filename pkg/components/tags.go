package components

import "github.com/decker502/starrust/pkg/types"

// PlayerComponent 玩家标记
type PlayerComponent struct{}

// BulletComponent 子弹标记
type BulletComponent struct{}

// ModelComponent 渲染模型句柄，模拟核心只存储不解析
type ModelComponent struct {
	Model types.ModelHandle
}

// LevelEntityComponent 关卡实体标记
// 离开 InGame 时所有带此标记的实体一并移除
type LevelEntityComponent struct{}
