package systems

import (
	"time"

	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/types"
)

// SoundPlayer 播放音效，句柄未加载时返回 false
type SoundPlayer interface {
	PlaySound(sound types.SoundHandle) bool
}

// AudioSystem 将本帧的音效请求交给播放器
// 同一帧内重复的音效只播放一次
type AudioSystem struct {
	events *game.Events
	player SoundPlayer
}

// NewAudioSystem 创建音效系统，player 为 nil 时只清空请求
func NewAudioSystem(events *game.Events, player SoundPlayer) *AudioSystem {
	return &AudioSystem{events: events, player: player}
}

// Update 播放并清空音效请求
func (s *AudioSystem) Update(dt time.Duration) {
	requests := s.events.Sound.Drain()
	if s.player == nil {
		return
	}
	played := make(map[types.SoundHandle]struct{}, len(requests))
	for _, req := range requests {
		if _, dup := played[req.Sound]; dup {
			continue
		}
		played[req.Sound] = struct{}{}
		s.player.PlaySound(req.Sound)
	}
}
