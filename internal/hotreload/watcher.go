// Package hotreload 监视关卡目录，文件变化时重新解析关卡配置
//
// 解析在后台 goroutine 中完成，结果通过带缓冲的 channel 交给游戏主循环，
// 主循环每帧调用 Poll 取出结果并写入 LevelRepository。
package hotreload

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/logger"
	"github.com/fsnotify/fsnotify"
)

// debounceWindow 同一文件在此时间内的重复事件只处理一次
const debounceWindow = 100 * time.Millisecond

// Reload 一次重新加载的结果
type Reload struct {
	Path  string
	Level *config.LevelConfig
	Err   error
}

// Watcher 关卡目录监视器
type Watcher struct {
	watcher *fsnotify.Watcher
	parse   func(path string) (*config.LevelConfig, error)
	updates chan Reload
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
	last    map[string]time.Time
}

// NewWatcher 监视 dir 下的关卡文件
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := newWatcher(fw, config.LoadLevelConfig)
	go w.run()
	logger.L().Infow("[HotReload] watching level directory", "dir", dir)
	return w, nil
}

func newWatcher(fw *fsnotify.Watcher, parse func(string) (*config.LevelConfig, error)) *Watcher {
	return &Watcher{
		watcher: fw,
		parse:   parse,
		updates: make(chan Reload, 16),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
		last:    make(map[string]time.Time),
	}
}

// Updates 重新加载结果 channel，Close 后关闭
func (w *Watcher) Updates() <-chan Reload {
	return w.updates
}

// Poll 非阻塞地取出所有待处理结果
func (w *Watcher) Poll() []Reload {
	var out []Reload
	for {
		select {
		case r, ok := <-w.updates:
			if !ok {
				return out
			}
			out = append(out, r)
		default:
			return out
		}
	}
}

// Close 停止监视，等待后台 goroutine 退出
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.updates)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if r, ok := w.handle(event, time.Now()); ok {
				w.publish(r)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.L().Warnw("[HotReload] watcher error", "error", err)
		case <-w.closeCh:
			return
		}
	}
}

// handle 过滤事件并解析关卡文件
func (w *Watcher) handle(event fsnotify.Event, now time.Time) (Reload, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return Reload{}, false
	}
	if !isLevelFile(event.Name) {
		return Reload{}, false
	}
	if t, ok := w.last[event.Name]; ok && now.Sub(t) < debounceWindow {
		return Reload{}, false
	}

	level, err := w.parse(event.Name)
	if err != nil {
		// 文件可能尚未写完，不进入去抖窗口
		return Reload{Path: event.Name, Err: err}, true
	}
	w.last[event.Name] = now
	if id, _ := config.LevelIDFromPath(event.Name); id != level.ID {
		logger.L().Warnw("[HotReload] level id differs from file name", "path", event.Name, "id", level.ID)
	}
	return Reload{Path: event.Name, Level: level}, true
}

// publish 发送结果，缓冲区满时丢弃
func (w *Watcher) publish(r Reload) {
	select {
	case w.updates <- r:
	default:
		logger.L().Warnw("[HotReload] update dropped, channel full", "path", r.Path)
	}
}

func isLevelFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), config.LevelFileExt)
}
