package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/decker502/starrust/pkg/types"
	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置数据结构
// 一个关卡由若干并行运行的生成器组成，每个生成器执行一份波次脚本
type LevelConfig struct {
	ID          string          `yaml:"id"`          // 关卡ID，如 "level0"
	Name        string          `yaml:"name"`        // 关卡名称
	Description string          `yaml:"description"` // 关卡描述（可选）
	Spawners    []SpawnerConfig `yaml:"spawners"`    // 生成器列表（如敌舰波次 + 拾取物）
}

// SpawnerConfig 单个生成器的波次脚本
type SpawnerConfig struct {
	Name         string              `yaml:"name"`
	Instructions []InstructionConfig `yaml:"instructions"`
}

// InstructionConfig 波次脚本中的一步
type InstructionConfig struct {
	Ship           string  `yaml:"ship"`           // 舰船类型名称，见 types.ParseShipKind
	Locations      []int   `yaml:"locations"`      // 出生点索引，为空表示全部出生点
	ActiveDuration float64 `yaml:"activeDuration"` // 持续时间（秒）
	SpawnInterval  float64 `yaml:"spawnInterval"`  // 生成间隔（秒）
}

// ActiveDurationValue 持续时间
func (c InstructionConfig) ActiveDurationValue() time.Duration {
	return secondsToDuration(c.ActiveDuration)
}

// SpawnIntervalValue 生成间隔
func (c InstructionConfig) SpawnIntervalValue() time.Duration {
	return secondsToDuration(c.SpawnInterval)
}

// ShipKind 解析舰船类型
func (c InstructionConfig) ShipKind() (types.ShipKind, error) {
	return types.ParseShipKind(c.Ship)
}

// ErrNoSpawners 关卡中没有任何生成器
var ErrNoSpawners = errors.New("at least one spawner is required")

// LoadLevelConfig 从YAML文件加载关卡配置
// 参数：
//
//	filepath - 关卡配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}
	return ParseLevelConfig(data, filepath)
}

// ParseLevelConfig 解析关卡配置数据，source 仅用于错误信息
func ParseLevelConfig(data []byte, source string) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w", source, err)
	}

	applyDefaults(&levelConfig)

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", source, err)
	}

	return &levelConfig, nil
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.Name == "" {
		config.Name = config.ID
	}
	for i := range config.Spawners {
		if config.Spawners[i].Name == "" {
			config.Spawners[i].Name = fmt.Sprintf("spawner-%d", i)
		}
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性
// 空脚本在这里被拒绝，生成器本身不处理 N == 0 的情况
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return fmt.Errorf("level ID is required")
	}

	if len(config.Spawners) == 0 {
		return ErrNoSpawners
	}

	for i, spawner := range config.Spawners {
		if len(spawner.Instructions) == 0 {
			return fmt.Errorf("spawner %d (%s): at least one instruction is required", i, spawner.Name)
		}

		for j, inst := range spawner.Instructions {
			kind, err := inst.ShipKind()
			if err != nil {
				return fmt.Errorf("spawner %d, instruction %d: %w", i, j, err)
			}
			if kind == types.ShipPlayer {
				return fmt.Errorf("spawner %d, instruction %d: player ship cannot be spawned by a wave", i, j)
			}
			if inst.ActiveDuration <= 0 {
				return fmt.Errorf("spawner %d, instruction %d: activeDuration must be positive, got %v", i, j, inst.ActiveDuration)
			}
			if inst.SpawnInterval <= 0 {
				return fmt.Errorf("spawner %d, instruction %d: spawnInterval must be positive, got %v", i, j, inst.SpawnInterval)
			}
			for k, loc := range inst.Locations {
				if loc < 0 || loc >= SpawnLaneCount {
					return fmt.Errorf("spawner %d, instruction %d: locations[%d] must be between 0 and %d, got %d",
						i, j, k, SpawnLaneCount-1, loc)
				}
			}
		}
	}

	return nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
