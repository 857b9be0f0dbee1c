package components

import "github.com/jakecoffman/cp"

// ActorComponent 可移动角色的速度数据
// Speed 的两个分量独立配置；匀速前进时使用 Speed.Length() 作为每帧位移
// 只由 AISystem 读取
type ActorComponent struct {
	Speed cp.Vector
}
