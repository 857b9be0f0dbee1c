// Package app 提供游戏应用的核心包装器
//
// 该包负责把配置、存档、音频和场景组装成一个 ebiten.Game。
// 调用 NewApp 之前必须先调用 embedded.Init() 初始化资源。
package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/embedded"
	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/logger"
	"github.com/decker502/starrust/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 内嵌数据文件路径
const (
	ResourcesPath    = "data/resources.yaml"
	DefaultLevelsDir = "data/levels"
)

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	gameState    *game.GameState
	settings     *game.SettingsManager
	scene        *scenes.GameScene
}

// NewApp 创建并初始化游戏应用
// reloads 可为 nil（未开启关卡热重载）
func NewApp(cfg *config.AppConfig, levels *config.LevelRepository, reloads scenes.ReloadSource) (*App, error) {
	raw, err := embedded.ReadFile(ResourcesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource table: %w", err)
	}
	assets, err := game.ParseAssetTable(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load resource table: %w", err)
	}

	// 存档不可用时降级为内存模式
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: cfg.Save.AppName}); err != nil {
		logger.L().Warnw("[App] save data unavailable, scores will not persist", "error", err)
	} else {
		gdataManager = m
	}

	settings := game.NewSettingsManager(gdataManager)
	scores := game.NewSaveManager(gdataManager)

	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, assets, embedded.ReadFile, settings)
	logger.L().Infow("[App] audio initialized", "preloaded", audioManager.Preload())

	gameState := game.NewGameState()
	sceneManager := game.NewSceneManager(func(levelID string) (game.Scene, error) {
		return scenes.NewGameScene(gameState, scenes.GameSceneOptions{
			Assets:  assets,
			Levels:  levels,
			Scores:  scores,
			Sound:   audioManager,
			Input:   KeyboardInput{},
			Reloads: reloads,
			LevelID: levelID,
			EndMode: cfg.Level.EndMode,

			DisableScreenShake: !settings.GetSettings().ScreenShake,
		})
	})
	if err := sceneManager.LoadLevel(cfg.Level.ID); err != nil {
		return nil, fmt.Errorf("failed to create game scene: %w", err)
	}

	a := &App{
		sceneManager: sceneManager,
		gameState:    gameState,
		settings:     settings,
	}
	a.scene, _ = sceneManager.GetCurrentScene().(*scenes.GameScene)

	// 启动后直接进入关卡
	gameState.RequestApp(game.AppStateInGame)

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetFullscreen(settings.GetSettings().Fullscreen)
	ebiten.SetWindowClosingHandled(true)
	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，固定步长为 config.TimeStep
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
			saveable.SaveOnExit()
		}
		if err := a.settings.Save(); err != nil {
			logger.L().Warnw("[App] failed to save settings", "error", err)
		}
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
	}

	a.updateSettingsKeys()

	if a.scene != nil {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter) && a.gameState.App() == game.AppStateMenu:
			a.scene.StartLevel()
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			a.scene.TogglePause()
		}
	}

	a.sceneManager.Update(config.TimeStep)
	return nil
}

// updateSettingsKeys M 静音，-/= 调整音量，K 开关镜头震动
func (a *App) updateSettingsKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		logger.L().Infow("[App] sound toggled", "enabled", a.settings.ToggleSound())
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		logger.L().Infow("[App] volume changed", "volume", a.settings.AdjustVolume(-game.VolumeStep))
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		logger.L().Infow("[App] volume changed", "volume", a.settings.AdjustVolume(game.VolumeStep))
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		enabled := a.settings.ToggleScreenShake()
		if a.scene != nil {
			a.scene.SetScreenShake(enabled)
		}
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时用黑边填充并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
