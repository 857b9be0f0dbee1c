package game

import "github.com/decker502/starrust/pkg/logger"

// AppState 顶层游戏状态
type AppState int

const (
	AppStateMenu AppState = iota
	AppStateInGame
	AppStatePaused
)

// String 返回状态名称
func (s AppState) String() string {
	switch s {
	case AppStateMenu:
		return "Menu"
	case AppStateInGame:
		return "InGame"
	case AppStatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// MenuState 与 AppState 正交的界面叠加状态
type MenuState int

const (
	MenuStateDisabled MenuState = iota // 游戏中不显示菜单
	MenuStateMain
	MenuStateLevelEnd
)

// String 返回状态名称
func (s MenuState) String() string {
	switch s {
	case MenuStateDisabled:
		return "Disabled"
	case MenuStateMain:
		return "Main"
	case MenuStateLevelEnd:
		return "LevelEnd"
	default:
		return "Unknown"
	}
}

// Transition 一次已生效的 AppState 切换
type Transition struct {
	From AppState
	To   AppState
}

// GameState 存储全局游戏状态
//
// 状态切换以请求的形式排队，每帧开始时由 ApplyTransitions 统一生效，
// 同一帧内的多次请求以最后一次为准；目标等于当前状态的请求不产生切换。
// 系统通过 Entered / Exited 查询本帧发生的切换，实现进入/退出钩子。
type GameState struct {
	app  AppState
	menu MenuState

	pendingApp  *AppState
	pendingMenu *MenuState

	transition    Transition
	hasTransition bool

	Score int // 当前关卡得分
}

// NewGameState 创建游戏状态，初始为 Menu / Main
func NewGameState() *GameState {
	return &GameState{
		app:  AppStateMenu,
		menu: MenuStateMain,
	}
}

// App 当前 AppState
func (gs *GameState) App() AppState {
	return gs.app
}

// Menu 当前 MenuState
func (gs *GameState) Menu() MenuState {
	return gs.menu
}

// RequestApp 请求切换 AppState，下一次 ApplyTransitions 生效
func (gs *GameState) RequestApp(state AppState) {
	gs.pendingApp = &state
}

// RequestMenu 请求切换 MenuState
func (gs *GameState) RequestMenu(state MenuState) {
	gs.pendingMenu = &state
}

// ApplyTransitions 应用排队的状态切换
// 返回本帧生效的 AppState 切换（若有）
func (gs *GameState) ApplyTransitions() (Transition, bool) {
	gs.hasTransition = false

	if gs.pendingMenu != nil {
		next := *gs.pendingMenu
		gs.pendingMenu = nil
		if next != gs.menu {
			logger.L().Debugw("[GameState] menu state changed", "from", gs.menu, "to", next)
			gs.menu = next
		}
	}

	if gs.pendingApp != nil {
		next := *gs.pendingApp
		gs.pendingApp = nil
		if next != gs.app {
			gs.transition = Transition{From: gs.app, To: next}
			gs.hasTransition = true
			logger.L().Infow("[GameState] app state changed", "from", gs.app, "to", next)
			gs.app = next
		}
	}

	return gs.transition, gs.hasTransition
}

// Entered 本帧是否进入了 state
func (gs *GameState) Entered(state AppState) bool {
	return gs.hasTransition && gs.transition.To == state
}

// Exited 本帧是否离开了 state
func (gs *GameState) Exited(state AppState) bool {
	return gs.hasTransition && gs.transition.From == state
}

// AddScore 增加得分
func (gs *GameState) AddScore(points int) {
	gs.Score += points
}

// ResetScore 清零得分（新关卡开始时）
func (gs *GameState) ResetScore() {
	gs.Score = 0
}
