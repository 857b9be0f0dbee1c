package config

import (
	"time"

	"github.com/jakecoffman/cp"
)

// 固定时间步长
const (
	// TicksPerSecond 模拟频率（Hz）
	TicksPerSecond = 60
	// TimeStep 每个模拟步长
	TimeStep = time.Second / TicksPerSecond
)

// 屏幕与游戏区域（世界坐标，原点位于屏幕中心，单位：像素）
const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	PlayLeft   = -ScreenWidth / 2.0
	PlayRight  = ScreenWidth / 2.0
	PlayBottom = -ScreenHeight / 2.0
	PlayTop    = ScreenHeight / 2.0

	// SpawnMargin 出生点位于右边界外侧的距离
	SpawnMargin = 60.0
	// DespawnMargin 越界判定在游戏区域外扩的距离，必须大于 SpawnMargin
	DespawnMargin = 120.0

	// SpawnLaneCount 出生点数量
	SpawnLaneCount = 8
)

// 实体绘制参数
const (
	ActorZ     = 2.0  // 舰船与子弹的绘制层级
	AssetScale = 1.0  // 玩家与子弹模型缩放
	EnemyScale = 23.0 // 敌舰模型缩放
)

// PlayerSpawnPosition 玩家初始位置
var PlayerSpawnPosition = cp.Vector{X: PlayLeft + 160, Y: 0}

// SpawnLocations 返回右边界外侧的出生点列表（自上而下均匀分布）
func SpawnLocations() []cp.Vector {
	locations := make([]cp.Vector, SpawnLaneCount)
	spacing := ScreenHeight / float64(SpawnLaneCount)
	for i := range locations {
		locations[i] = cp.Vector{
			X: PlayRight + SpawnMargin,
			Y: PlayTop - spacing/2 - spacing*float64(i),
		}
	}
	return locations
}

// InDespawnBounds 判断位置是否仍在可存活范围内（游戏区域外扩 DespawnMargin）
func InDespawnBounds(p cp.Vector) bool {
	return p.X >= PlayLeft-DespawnMargin &&
		p.X <= PlayRight+DespawnMargin &&
		p.Y >= PlayBottom-DespawnMargin &&
		p.Y <= PlayTop+DespawnMargin
}
