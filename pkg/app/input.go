package app

import (
	"github.com/decker502/starrust/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// KeyboardInput 方向键 / WASD 移动，空格射击
type KeyboardInput struct{}

// PlayerInput 读取当前键盘状态
func (KeyboardInput) PlayerInput() systems.PlayerInput {
	var move cp.Vector
	if pressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		move.X--
	}
	if pressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		move.X++
	}
	if pressed(ebiten.KeyArrowUp, ebiten.KeyW) {
		move.Y++
	}
	if pressed(ebiten.KeyArrowDown, ebiten.KeyS) {
		move.Y--
	}
	return systems.PlayerInput{
		Move: move,
		Fire: ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
