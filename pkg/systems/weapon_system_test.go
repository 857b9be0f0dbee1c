package systems

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/entities"
	"github.com/decker502/starrust/pkg/game"
	"github.com/decker502/starrust/pkg/types"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bulletsOf(em *ecs.EntityManager) []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.BulletComponent](em)
}

func TestEnemyAutoFire(t *testing.T) {
	em := ecs.NewEntityManager()
	events := game.NewEvents()
	system := NewWeaponSystem(em, events, testModels())

	pos := cp.Vector{X: 500, Y: 90}
	_, err := entities.DefaultEnemyShip(testClips(), testModels(), pos).Insert(em)
	require.NoError(t, err)

	system.Update(tick)
	assert.Empty(t, bulletsOf(em))

	system.Update(tick)
	bullets := bulletsOf(em)
	require.Len(t, bullets, 1, "0.5 秒冷却到期开火一次")
	assert.True(t, events.WeaponFired.Empty(), "开火事件在同一帧被消费")
	assert.Equal(t, []types.SoundHandle{"SOUND_LASER_SHOT"}, soundsOf(events))

	bullet := bullets[0]
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, bullet)
	assert.InDelta(t, 480, transform.Position.X, 1e-9, "枪口偏移随朝向旋转")
	assert.InDelta(t, 90, transform.Position.Y, 1e-9)
	assert.Equal(t, components.FacingLeft, transform.Rotation)

	collider, _ := ecs.GetComponent[*components.ColliderComponent](em, bullet)
	assert.Equal(t, components.FactionEnemy, collider.Hitmask)
	model, _ := ecs.GetComponent[*components.ModelComponent](em, bullet)
	assert.Equal(t, testModels().DefaultEnemyBullet, model.Model)

	for i := 0; i < 4; i++ {
		system.Update(tick)
	}
	assert.Len(t, bulletsOf(em), 3)
}

func TestDisabledWeaponNeverFires(t *testing.T) {
	em := ecs.NewEntityManager()
	events := game.NewEvents()
	system := NewWeaponSystem(em, events, testModels())

	_, err := entities.JetCharger(testClips(), testModels(), cp.Vector{X: 700}).Insert(em)
	require.NoError(t, err)
	_, err = entities.SpacePlatform(testClips(), testModels(), cp.Vector{X: 700, Y: 90}).Insert(em)
	require.NoError(t, err)

	for i := 0; i < 60*60*2; i++ {
		system.Update(time.Second / 60)
	}
	assert.Empty(t, bulletsOf(em))
}

func TestPlayerTrigger(t *testing.T) {
	em := ecs.NewEntityManager()
	events := game.NewEvents()
	system := NewWeaponSystem(em, events, testModels())

	player, err := entities.PlayerShip(testClips(), testModels(), cp.Vector{X: -480}).Insert(em)
	require.NoError(t, err)
	trigger, _ := ecs.GetComponent[*components.TriggerComponent](em, player)
	weapon, _ := ecs.GetComponent[*components.WeaponComponent](em, player)

	step := 50 * time.Millisecond

	// 未按下扳机时不开火
	for i := 0; i < 20; i++ {
		system.Update(step)
	}
	assert.Empty(t, bulletsOf(em))
	assert.True(t, weapon.Cooldown.Paused())

	// 按下立即开火，之后每 150ms 一发
	trigger.Held = true
	var fired []int
	for i := 1; i <= 7; i++ {
		before := len(bulletsOf(em))
		system.Update(step)
		if len(bulletsOf(em)) > before {
			fired = append(fired, i)
		}
	}
	assert.Equal(t, []int{1, 4, 7}, fired)

	// 松开后暂停，再次按下立即开火
	trigger.Held = false
	system.Update(step)
	assert.True(t, weapon.Cooldown.Paused())
	count := len(bulletsOf(em))

	trigger.Held = true
	system.Update(step)
	assert.Len(t, bulletsOf(em), count+1)

	bullet := bulletsOf(em)[0]
	collider, _ := ecs.GetComponent[*components.ColliderComponent](em, bullet)
	assert.Equal(t, components.FactionAlly, collider.Hitmask)
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, bullet)
	assert.InDelta(t, -460, transform.Position.X, 1e-9)
	assert.InDelta(t, -10, transform.Position.Y, 1e-9)
	assert.InDelta(t, 0, math.Abs(transform.Rotation), 1e-12)
}

func TestBulletsTravelForward(t *testing.T) {
	em := ecs.NewEntityManager()
	events := game.NewEvents()
	weapons := NewWeaponSystem(em, events, testModels())
	ai := NewAISystem(em)

	player, err := entities.PlayerShip(testClips(), testModels(), cp.Vector{}).Insert(em)
	require.NoError(t, err)
	trigger, _ := ecs.GetComponent[*components.TriggerComponent](em, player)
	trigger.Held = true

	weapons.Update(time.Second / 60)
	bullet := bulletsOf(em)[0]
	start, _ := ecs.GetComponent[*components.TransformComponent](em, bullet)
	x0 := start.Position.X

	ai.Update(time.Second / 60)
	moved, _ := ecs.GetComponent[*components.TransformComponent](em, bullet)
	assert.InDelta(t, x0+math.Hypot(10, 10), moved.Position.X, 1e-9)
}
