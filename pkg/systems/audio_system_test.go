package systems

import (
	"testing"

	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/types"
	"github.com/stretchr/testify/assert"
)

type recordingPlayer struct {
	played []types.SoundHandle
}

func (p *recordingPlayer) PlaySound(sound types.SoundHandle) bool {
	p.played = append(p.played, sound)
	return true
}

func TestAudioSystemPlaysQueuedSounds(t *testing.T) {
	events := game.NewEvents()
	player := &recordingPlayer{}
	system := NewAudioSystem(events, player)

	events.PlaySound("SOUND_LASER_SHOT")
	events.PlaySound("SOUND_LIGHT_EXPLOSION")
	events.PlaySound("SOUND_LASER_SHOT")
	events.PlaySound("")
	system.Update(tick)

	assert.Equal(t, []types.SoundHandle{"SOUND_LASER_SHOT", "SOUND_LIGHT_EXPLOSION"}, player.played)
	assert.True(t, events.Sound.Empty())

	system.Update(tick)
	assert.Len(t, player.played, 2)
}

func TestAudioSystemWithoutPlayer(t *testing.T) {
	events := game.NewEvents()
	system := NewAudioSystem(events, nil)

	events.PlaySound("SOUND_LASER_SHOT")
	system.Update(tick)
	assert.True(t, events.Sound.Empty())
}
