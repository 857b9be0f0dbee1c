package game

import (
	"math"

	"github.com/decker502/starrust/pkg/logger"
	"github.com/quasilyte/gdata/v2"
)

// GameSettings 玩家偏好
type GameSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"`
	ScreenShake  bool    `yaml:"screenShake"` // 关闭后忽略镜头震动请求
}

// VolumeStep 每次按键调整的音量
const VolumeStep = 0.1

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
		ScreenShake:  true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 持有当前设置，修改只作用于内存，Save 时写回
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

// NewSettingsManager 创建设置管理器，读取失败时使用默认值
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		logger.L().Warnw("[SettingsManager] failed to load settings, using defaults", "error", err)
	}
	return sm
}

// Load 重新读取设置，缺失字段保留默认值
func (sm *SettingsManager) Load() error {
	loaded := DefaultSettings()
	found, err := loadProp(sm.gdataManager, settingsObject, settingsProperty, loaded)
	if err != nil || !found {
		sm.settings = DefaultSettings()
		return err
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.settings = loaded
	return nil
}

// Save 写回设置，无存档时为空操作
func (sm *SettingsManager) Save() error {
	return saveProp(sm.gdataManager, settingsObject, settingsProperty, sm.settings)
}

// GetSettings 当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// AdjustVolume 按增量调整音量并返回新值，结果取整到一位小数
func (sm *SettingsManager) AdjustVolume(delta float64) float64 {
	volume := math.Round((sm.settings.SoundVolume+delta)*10) / 10
	sm.SetSoundVolume(volume)
	return sm.settings.SoundVolume
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// ToggleSound 切换静音并返回新的开关状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	return sm.settings.SoundEnabled
}

func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleScreenShake 切换镜头震动并返回新的开关状态
func (sm *SettingsManager) ToggleScreenShake() bool {
	sm.settings.ScreenShake = !sm.settings.ScreenShake
	return sm.settings.ScreenShake
}

func clampVolume(volume float64) float64 {
	return math.Max(0, math.Min(1, volume))
}
