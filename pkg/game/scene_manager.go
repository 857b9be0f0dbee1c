package game

import (
	"time"

	"github.com/decker502/starrust/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按关卡ID创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(levelID string) (Scene, error)

// SceneManager 管理当前活动场景
// 任意时刻只有一个场景的 Update 和 Draw 被调用
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager(factory SceneFactory) *SceneManager {
	return &SceneManager{sceneFactory: factory}
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadLevel 创建并切换到指定关卡的场景
// 创建失败时保持当前场景不变
func (sm *SceneManager) LoadLevel(levelID string) error {
	if sm.sceneFactory == nil {
		return errNoSceneFactory
	}

	scene, err := sm.sceneFactory(levelID)
	if err != nil {
		logger.L().Errorw("[SceneManager] failed to create level scene", "level", levelID, "error", err)
		return err
	}
	sm.SwitchTo(scene)
	logger.L().Infow("[SceneManager] switched to level", "level", levelID)
	return nil
}

// Update 推进当前场景
func (sm *SceneManager) Update(dt time.Duration) {
	if sm.currentScene != nil {
		sm.currentScene.Update(dt)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
