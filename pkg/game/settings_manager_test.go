package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestGdata 在临时 HOME 下创建 gdata manager，环境不支持时跳过
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil || manager == nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return manager
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, 0.8, settings.SoundVolume)
	assert.True(t, settings.SoundEnabled)
	assert.False(t, settings.Fullscreen)
	assert.True(t, settings.ScreenShake)
}

func TestSettingsManagerToggles(t *testing.T) {
	sm := NewSettingsManager(nil)

	assert.InDelta(t, 0.9, sm.AdjustVolume(VolumeStep), 1e-9)
	assert.InDelta(t, 1.0, sm.AdjustVolume(VolumeStep), 1e-9)
	assert.InDelta(t, 1.0, sm.AdjustVolume(VolumeStep), 1e-9, "音量上限 1")
	for i := 0; i < 15; i++ {
		sm.AdjustVolume(-VolumeStep)
	}
	assert.Equal(t, 0.0, sm.GetSettings().SoundVolume)

	assert.False(t, sm.ToggleSound())
	assert.True(t, sm.ToggleSound())
	assert.False(t, sm.ToggleScreenShake())
	assert.False(t, sm.GetSettings().ScreenShake)
}

func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundVolume(1.5)
	assert.Equal(t, 1.0, sm.GetSettings().SoundVolume)
	sm.SetSoundVolume(-1)
	assert.Equal(t, 0.0, sm.GetSettings().SoundVolume)
	assert.NoError(t, sm.Save(), "降级模式保存不报错")
}

func TestSettingsManagerPersistence(t *testing.T) {
	manager := openTestGdata(t, "starrust_settings_test")

	sm := NewSettingsManager(manager)
	sm.SetSoundVolume(0.3)
	sm.SetSoundEnabled(false)
	sm.SetFullscreen(true)
	sm.ToggleScreenShake()
	require.NoError(t, sm.Save())

	reloaded := NewSettingsManager(manager)
	settings := reloaded.GetSettings()
	assert.Equal(t, 0.3, settings.SoundVolume)
	assert.False(t, settings.SoundEnabled)
	assert.True(t, settings.Fullscreen)
	assert.False(t, settings.ScreenShake)
}
