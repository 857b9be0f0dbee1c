package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/game"
	"github.com/jakecoffman/cp"
)

// CameraSystem 消费镜头震动请求并计算镜头偏移
//
// 每个请求按强度累加 Trauma（上限 1），Trauma 线性衰减；
// 偏移量与 Trauma 的平方成正比，方向随机。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	events        *game.Events
	rng           *rand.Rand
	cameraEntity  ecs.EntityID
	disabled      bool
}

// NewCameraSystem 创建镜头系统及镜头实体
func NewCameraSystem(em *ecs.EntityManager, events *game.Events, rng *rand.Rand) *CameraSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cs := &CameraSystem{
		entityManager: em,
		events:        events,
		rng:           rng,
	}
	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		DecayPerSecond: components.DefaultCameraDecayPerSecond,
		MaxOffset:      components.DefaultCameraMaxOffset,
	})
	return cs
}

// Update 累加震动请求、衰减并更新偏移
func (cs *CameraSystem) Update(dt time.Duration) {
	requests := cs.events.CameraShake.Drain()

	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}

	if !cs.disabled {
		for _, req := range requests {
			camera.Trauma += req.Magnitude * components.DefaultCameraTraumaPerShake
		}
	}
	camera.Trauma = math.Min(1, camera.Trauma)

	camera.Trauma = math.Max(0, camera.Trauma-camera.DecayPerSecond*dt.Seconds())
	if camera.Trauma == 0 {
		camera.Offset = cp.Vector{}
		return
	}

	amount := camera.Trauma * camera.Trauma * camera.MaxOffset
	camera.Offset = cp.ForAngle(cs.rng.Float64() * 2 * math.Pi).Mult(amount)
}

// SetEnabled 关闭后请求照常清空，但不再累加震动
func (cs *CameraSystem) SetEnabled(enabled bool) {
	cs.disabled = !enabled
}

// Offset 当前镜头偏移
func (cs *CameraSystem) Offset() cp.Vector {
	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return cp.Vector{}
	}
	return camera.Offset
}

// Trauma 当前震动强度
func (cs *CameraSystem) Trauma() float64 {
	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return 0
	}
	return camera.Trauma
}
