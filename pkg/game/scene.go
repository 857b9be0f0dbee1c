package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Update is called once per fixed simulation tick.
type Scene interface {
	// Update advances the scene by one tick of length dt.
	Update(dt time.Duration)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在游戏窗口关闭时被调用 SaveOnExit()
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
