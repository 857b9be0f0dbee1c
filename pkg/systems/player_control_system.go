package systems

import (
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/jakecoffman/cp"
)

// PlayerInput 单帧玩家输入
type PlayerInput struct {
	Move cp.Vector // 移动方向，各分量取值 [-1, 1]
	Fire bool      // 是否按住射击键
}

// InputSource 提供玩家输入（键盘实现见 pkg/app）
type InputSource interface {
	PlayerInput() PlayerInput
}

// PlayerControlSystem 将输入映射到玩家舰船
//
// 移动与 AI 冲锋相同，按每帧固定距离 Speed.Length() 计算，位置限制在游戏区域内。
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	input         InputSource
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(em *ecs.EntityManager, input InputSource) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 读取输入并更新扳机状态和位置
func (s *PlayerControlSystem) Update(dt time.Duration) {
	if s.input == nil {
		return
	}
	in := s.input.PlayerInput()

	players := ecs.GetEntitiesWith4[
		*components.PlayerComponent,
		*components.TransformComponent,
		*components.ActorComponent,
		*components.TriggerComponent,
	](s.entityManager)

	for _, id := range players {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		actor, _ := ecs.GetComponent[*components.ActorComponent](s.entityManager, id)
		trigger, _ := ecs.GetComponent[*components.TriggerComponent](s.entityManager, id)

		trigger.Held = in.Fire

		if in.Move.LengthSq() == 0 {
			continue
		}
		step := in.Move.Normalize().Mult(actor.Speed.Length())
		transform.Position = clampToPlayArea(transform.Position.Add(step))
	}
}

// playArea 玩家可移动范围
var playArea = cp.BB{L: config.PlayLeft, B: config.PlayBottom, R: config.PlayRight, T: config.PlayTop}

func clampToPlayArea(p cp.Vector) cp.Vector {
	return playArea.ClampVect(&p)
}
