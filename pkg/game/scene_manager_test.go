package game

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingScene struct {
	level   string
	updates int
	elapsed time.Duration
}

func (s *countingScene) Update(dt time.Duration) {
	s.updates++
	s.elapsed += dt
}

func (s *countingScene) Draw(screen *ebiten.Image) {}

func TestSceneManagerLoadLevel(t *testing.T) {
	sm := NewSceneManager(func(levelID string) (Scene, error) {
		if levelID == "broken" {
			return nil, errors.New("broken level")
		}
		return &countingScene{level: levelID}, nil
	})
	assert.Nil(t, sm.GetCurrentScene())
	sm.Update(time.Second) // 没有场景时不崩溃

	require.NoError(t, sm.LoadLevel("level0"))
	scene := sm.GetCurrentScene().(*countingScene)
	assert.Equal(t, "level0", scene.level)

	sm.Update(10 * time.Millisecond)
	sm.Update(10 * time.Millisecond)
	assert.Equal(t, 2, scene.updates)
	assert.Equal(t, 20*time.Millisecond, scene.elapsed)

	assert.Error(t, sm.LoadLevel("broken"))
	assert.Same(t, scene, sm.GetCurrentScene(), "创建失败时保持原场景")
}

func TestSceneManagerWithoutFactory(t *testing.T) {
	sm := NewSceneManager(nil)
	assert.ErrorIs(t, sm.LoadLevel("level0"), errNoSceneFactory)
}
