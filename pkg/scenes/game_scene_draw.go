package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// 调试绘制颜色
var (
	backgroundColor  = color.RGBA{R: 8, G: 8, B: 24, A: 255}
	playerColor      = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	enemyColor       = color.RGBA{R: 230, G: 70, B: 70, A: 255}
	pickupColor      = color.RGBA{R: 250, G: 210, B: 60, A: 255}
	allyBulletColor  = color.RGBA{R: 140, G: 200, B: 255, A: 255}
	enemyBulletColor = color.RGBA{R: 255, G: 140, B: 60, A: 255}
)

// Draw 以碰撞盒绘制所有实体，并显示得分与状态
// 模型资源不在模拟核心中解析，这里只做调试级别的可视化
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	offset := s.cameraSystem.Offset()
	ids := ecs.GetEntitiesWith2[*components.ColliderComponent, *components.TransformComponent](s.entityManager)
	for _, id := range ids {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		collider, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)

		x, y := worldToScreen(transform.Position.Add(offset))
		w, h := float32(collider.Rect.X), float32(collider.Rect.Y)
		vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, s.colorOf(id, collider), false)
	}

	s.drawHUD(screen)
}

func (s *GameScene) colorOf(id ecs.EntityID, collider *components.ColliderComponent) color.Color {
	bullet := ecs.HasComponent[*components.BulletComponent](s.entityManager, id)
	switch {
	case ecs.HasComponent[*components.PlayerComponent](s.entityManager, id):
		return playerColor
	case bullet && collider.Hitmask == components.FactionAlly:
		return allyBulletColor
	case bullet:
		return enemyBulletColor
	case collider.Damage == 0:
		return pickupColor
	default:
		return enemyColor
	}
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	best := 0
	if s.scores != nil {
		best = s.scores.HighScore()
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d   BEST %d", s.gameState.Score, best), 10, 10)

	switch s.gameState.App() {
	case game.AppStateMenu:
		if s.gameState.Menu() == game.MenuStateLevelEnd {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %s COMPLETE - SCORE %d", s.LevelID(), s.gameState.Score),
				config.ScreenWidth/2-100, config.ScreenHeight/2-20)
		}
		ebitenutil.DebugPrintAt(screen, "PRESS ENTER TO START", config.ScreenWidth/2-70, config.ScreenHeight/2)
	case game.AppStatePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - PRESS ESC", config.ScreenWidth/2-60, config.ScreenHeight/2)
	}
}

// worldToScreen 世界坐标（原点居中，Y 向上）转换为屏幕坐标（原点左上，Y 向下）
func worldToScreen(p cp.Vector) (float32, float32) {
	return float32(p.X - config.PlayLeft), float32(config.PlayTop - p.Y)
}
