package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrLevelIDMismatch 关卡文件名与文件内的 id 不一致
var ErrLevelIDMismatch = errors.New("level id does not match file name")

// LevelFileExt 关卡文件扩展名
const LevelFileExt = ".yaml"

// ReadFunc 读取文件内容（embedded.ReadFile 或 os.ReadFile）
type ReadFunc func(path string) ([]byte, error)

// LevelRepository 按ID读取关卡配置
//
// 关卡文件位于 dir/<id>.yaml。通过 Store 写入的配置（热重载）优先于文件。
// 只在游戏主循环中使用，不做并发保护。
type LevelRepository struct {
	read      ReadFunc
	dir       string
	overrides map[string]*LevelConfig
}

// NewLevelRepository 创建关卡仓库
func NewLevelRepository(read ReadFunc, dir string) *LevelRepository {
	return &LevelRepository{
		read:      read,
		dir:       dir,
		overrides: make(map[string]*LevelConfig),
	}
}

// Dir 关卡目录
func (r *LevelRepository) Dir() string {
	return r.dir
}

// PathFor 返回关卡文件路径
func (r *LevelRepository) PathFor(id string) string {
	return filepath.Join(r.dir, id+LevelFileExt)
}

// LoadLevel 加载关卡配置
func (r *LevelRepository) LoadLevel(id string) (*LevelConfig, error) {
	if level, ok := r.overrides[id]; ok {
		return level, nil
	}

	path := r.PathFor(id)
	data, err := r.read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", id, err)
	}
	level, err := ParseLevelConfig(data, path)
	if err != nil {
		return nil, err
	}
	if level.ID != id {
		return nil, fmt.Errorf("%w: %s declares id %q", ErrLevelIDMismatch, path, level.ID)
	}
	return level, nil
}

// Store 覆盖关卡配置，之后的 LoadLevel 返回该配置
func (r *LevelRepository) Store(level *LevelConfig) {
	r.overrides[level.ID] = level
}

// LevelIDFromPath 从关卡文件路径提取ID，非关卡文件返回 false
func LevelIDFromPath(path string) (string, bool) {
	base := filepath.Base(path)
	if filepath.Ext(base) != LevelFileExt {
		return "", false
	}
	id := strings.TrimSuffix(base, LevelFileExt)
	return id, id != ""
}
