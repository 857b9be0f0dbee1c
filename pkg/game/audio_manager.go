package game

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/decker502/starrust/pkg/logger"
	"github.com/decker502/starrust/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// FileReader 按路径读取资源文件（通常为 embedded.ReadFile）
type FileReader func(path string) ([]byte, error)

// AudioManager 音频管理器
// 职责：
//   - 按音效句柄懒加载并缓存播放器
//   - 应用 SettingsManager 中的音量与开关
//   - 句柄没有对应文件或加载失败时静默跳过
//
// context 为 nil 时所有播放请求都被忽略（无声模式，测试与无音频设备环境使用）
type AudioManager struct {
	context  *audio.Context
	assets   *AssetTable
	read     FileReader
	settings *SettingsManager

	players map[types.SoundHandle]*audio.Player
	failed  map[types.SoundHandle]bool // 加载失败的句柄不再重试
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: 音频上下文，可为 nil（无声模式）
//   - assets: 资源表，用于查找音效文件路径
//   - read: 文件读取函数
//   - sm: 设置管理器，可为 nil（使用默认音量）
func NewAudioManager(ctx *audio.Context, assets *AssetTable, read FileReader, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:  ctx,
		assets:   assets,
		read:     read,
		settings: sm,
		players:  make(map[types.SoundHandle]*audio.Player),
		failed:   make(map[types.SoundHandle]bool),
	}
}

// PlaySound 播放音效，返回是否实际播放
func (am *AudioManager) PlaySound(sound types.SoundHandle) bool {
	if am.context == nil || sound == "" {
		return false
	}
	if am.settings != nil && !am.settings.GetSettings().SoundEnabled {
		return false
	}

	player := am.getPlayer(sound)
	if player == nil {
		return false
	}

	player.SetVolume(am.soundVolume())
	if err := player.Rewind(); err != nil {
		logger.L().Warnw("[AudioManager] failed to rewind sound", "sound", sound, "error", err)
	}
	player.Play()
	return true
}

// Preload 预加载资源表中所有带文件的音效
func (am *AudioManager) Preload() int {
	if am.context == nil || am.assets == nil {
		return 0
	}
	loaded := 0
	for _, h := range am.assets.SoundHandles() {
		if am.getPlayer(h) != nil {
			loaded++
		}
	}
	logger.L().Infow("[AudioManager] sounds preloaded", "count", loaded)
	return loaded
}

// getPlayer 获取或加载播放器
func (am *AudioManager) getPlayer(sound types.SoundHandle) *audio.Player {
	if player, ok := am.players[sound]; ok {
		return player
	}
	if am.failed[sound] || am.assets == nil || am.read == nil {
		return nil
	}

	path, ok := am.assets.SoundPath(sound)
	if !ok {
		// 静音资源（如 no_sound）
		am.failed[sound] = true
		return nil
	}

	player, err := am.load(path)
	if err != nil {
		am.failed[sound] = true
		logger.L().Warnw("[AudioManager] failed to load sound", "sound", sound, "path", path, "error", err)
		return nil
	}
	am.players[sound] = player
	return player
}

// load 读取并解码音效文件（单次播放，不循环）
func (am *AudioManager) load(path string) (*audio.Player, error) {
	data, err := am.read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	reader := bytes.NewReader(data)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		decoded, err := vorbis.DecodeWithSampleRate(am.context.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG %s: %w", path, err)
		}
		stream = decoded
	case ".mp3":
		decoded, err := mp3.DecodeWithSampleRate(am.context.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 %s: %w", path, err)
		}
		stream = decoded
	case ".wav":
		decoded, err := wav.DecodeWithSampleRate(am.context.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV %s: %w", path, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .ogg, .mp3, .wav)", ext)
	}

	player, err := am.context.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	return player, nil
}

func (am *AudioManager) soundVolume() float64 {
	if am.settings != nil {
		return am.settings.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
