package game

import (
	"fmt"

	"github.com/decker502/starrust/pkg/types"
	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the resource table loaded from data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	sounds:
//	  - id: SOUND_LASER_SHOT
//	    role: laser_shot
//	    path: audio/laser_shot.ogg
//	models:
//	  - id: MODEL_DEFAULT_PLAYER
//	    role: default_player
//	    path: models/player.glb
type ResourceConfig struct {
	Version  string          `yaml:"version"`   // Configuration file version
	BasePath string          `yaml:"base_path"` // Base path for all resource files
	Sounds   []AssetResource `yaml:"sounds"`
	Models   []AssetResource `yaml:"models"`
}

// AssetResource 单个资源定义
// Role 将资源绑定到 AudioClips / SceneModels 中的某个字段；Path 为空表示静音或占位资源
type AssetResource struct {
	ID   string `yaml:"id"`
	Role string `yaml:"role"`
	Path string `yaml:"path,omitempty"`
}

// AudioClips 按角色分组的音效句柄
type AudioClips struct {
	LaserShot      types.SoundHandle
	LightExplosion types.SoundHandle
	LightPow       types.SoundHandle
	NoSound        types.SoundHandle
	CoinLarry      types.SoundHandle
}

// SceneModels 按角色分组的模型句柄
type SceneModels struct {
	DefaultPlayer      types.ModelHandle
	DefaultEnemy       types.ModelHandle
	JetCharger         types.ModelHandle
	SpacePlatform      types.ModelHandle
	PowerupStar        types.ModelHandle
	DefaultBullet      types.ModelHandle
	DefaultEnemyBullet types.ModelHandle
}

// AssetTable 解析后的资源表，构造后只读
type AssetTable struct {
	Audio  AudioClips
	Models SceneModels

	soundPaths map[types.SoundHandle]string
	modelPaths map[types.ModelHandle]string
}

// SoundPath 返回音效文件完整路径，静音资源返回 false
func (t *AssetTable) SoundPath(h types.SoundHandle) (string, bool) {
	p, ok := t.soundPaths[h]
	return p, ok && p != ""
}

// ModelPath 返回模型文件完整路径
func (t *AssetTable) ModelPath(h types.ModelHandle) (string, bool) {
	p, ok := t.modelPaths[h]
	return p, ok && p != ""
}

// SoundHandles 返回所有带文件的音效句柄，用于预加载
func (t *AssetTable) SoundHandles() []types.SoundHandle {
	handles := make([]types.SoundHandle, 0, len(t.soundPaths))
	for h, p := range t.soundPaths {
		if p != "" {
			handles = append(handles, h)
		}
	}
	return handles
}

// ParseAssetTable 解析资源表并检查每个角色都已绑定
func ParseAssetTable(data []byte) (*AssetTable, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	return NewAssetTable(&cfg)
}

// NewAssetTable 从资源配置构建资源表
func NewAssetTable(cfg *ResourceConfig) (*AssetTable, error) {
	table := &AssetTable{
		soundPaths: make(map[types.SoundHandle]string),
		modelPaths: make(map[types.ModelHandle]string),
	}

	soundRoles := map[string]*types.SoundHandle{
		"laser_shot":      &table.Audio.LaserShot,
		"light_explosion": &table.Audio.LightExplosion,
		"light_pow":       &table.Audio.LightPow,
		"no_sound":        &table.Audio.NoSound,
		"coin_larry":      &table.Audio.CoinLarry,
	}
	modelRoles := map[string]*types.ModelHandle{
		"default_player":       &table.Models.DefaultPlayer,
		"default_enemy":        &table.Models.DefaultEnemy,
		"jet_charger":          &table.Models.JetCharger,
		"space_platform":       &table.Models.SpacePlatform,
		"powerup_star":         &table.Models.PowerupStar,
		"default_bullet":       &table.Models.DefaultBullet,
		"default_enemy_bullet": &table.Models.DefaultEnemyBullet,
	}

	for _, res := range cfg.Sounds {
		h := types.SoundHandle(res.ID)
		if err := bindRole(res, soundRoles, &h); err != nil {
			return nil, fmt.Errorf("sound %q: %w", res.ID, err)
		}
		if _, dup := table.soundPaths[h]; dup {
			return nil, fmt.Errorf("duplicate sound id %q", res.ID)
		}
		table.soundPaths[h] = resourcePath(cfg.BasePath, res.Path)
	}
	for _, res := range cfg.Models {
		h := types.ModelHandle(res.ID)
		if err := bindRole(res, modelRoles, &h); err != nil {
			return nil, fmt.Errorf("model %q: %w", res.ID, err)
		}
		if _, dup := table.modelPaths[h]; dup {
			return nil, fmt.Errorf("duplicate model id %q", res.ID)
		}
		table.modelPaths[h] = resourcePath(cfg.BasePath, res.Path)
	}

	for role, h := range soundRoles {
		if *h == "" {
			return nil, fmt.Errorf("no sound bound to role %q", role)
		}
	}
	for role, h := range modelRoles {
		if *h == "" {
			return nil, fmt.Errorf("no model bound to role %q", role)
		}
	}
	return table, nil
}

// bindRole 将句柄写入角色对应的字段，角色为空时只登记资源
func bindRole[H ~string](res AssetResource, roles map[string]*H, h *H) error {
	if res.ID == "" {
		return fmt.Errorf("resource id is required")
	}
	if res.Role == "" {
		return nil
	}
	slot, ok := roles[res.Role]
	if !ok {
		return fmt.Errorf("unknown role %q", res.Role)
	}
	if *slot != "" {
		return fmt.Errorf("role %q already bound to %q", res.Role, *slot)
	}
	*slot = *h
	return nil
}

// resourcePath 拼接 base_path 与相对路径，路径为空时保持为空
func resourcePath(basePath, relativePath string) string {
	if relativePath == "" || basePath == "" {
		return relativePath
	}
	if relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
