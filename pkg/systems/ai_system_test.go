package systems

import (
	"math"
	"testing"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func newMover(em *ecs.EntityManager, mode components.AIMode, speed cp.Vector, rotation float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Rotation: rotation, Scale: 1})
	ecs.AddComponent(em, id, &components.ActorComponent{Speed: speed})
	ai := components.NewAIComponent(mode)
	ecs.AddComponent(em, id, &ai)
	return id
}

func TestAIChargeForwardMovesFixedDistancePerTick(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAISystem(em)
	id := newMover(em, components.AIModeChargeForward, cp.Vector{X: 6, Y: 6}, components.FacingRight)

	step := math.Hypot(6, 6) // ≈ 8.49

	system.Update(config.TimeStep)
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	assert.InDelta(t, step, transform.Position.X, 1e-9)
	assert.InDelta(t, 0, transform.Position.Y, 1e-9)

	for i := 1; i < config.TicksPerSecond; i++ {
		system.Update(config.TimeStep)
	}
	assert.InDelta(t, 60*step, transform.Position.X, 1e-6)
}

func TestAIChargeForwardFollowsFacing(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAISystem(em)
	id := newMover(em, components.AIModeChargeForward, cp.Vector{X: 1.5, Y: 1.5}, components.FacingLeft)

	system.Update(config.TimeStep)
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	assert.InDelta(t, -math.Hypot(1.5, 1.5), transform.Position.X, 1e-9)
	assert.InDelta(t, 0, transform.Position.Y, 1e-9)
}

func TestAIStubModesDoNotMove(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAISystem(em)

	modes := []components.AIMode{
		components.AIModeNoMovement,
		components.AIModeForwardBack,
		components.AIModeSinusoid,
		components.AIMode(99),
	}
	var ids []ecs.EntityID
	for _, mode := range modes {
		ids = append(ids, newMover(em, mode, cp.Vector{X: 6, Y: 6}, 0))
	}

	for i := 0; i < 10; i++ {
		system.Update(config.TimeStep)
	}

	for i, id := range ids {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		assert.Equal(t, cp.Vector{}, transform.Position, "mode %s", modes[i])

		ai, _ := ecs.GetComponent[*components.AIComponent](em, id)
		assert.Equal(t, 10*config.TimeStep, ai.Timer.Elapsed(), "计时器照常累加")
	}
}
