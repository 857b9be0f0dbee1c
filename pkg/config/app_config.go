package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// LevelEndMode 关卡结束后主状态切换的目标
type LevelEndMode string

const (
	LevelEndMenu   LevelEndMode = "menu"   // 返回菜单（默认）
	LevelEndPaused LevelEndMode = "paused" // 进入暂停
)

// AppConfig 应用配置
// 来源优先级：命令行参数 > STARRUST_* 环境变量 > starrust.yaml > 默认值
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	TPS     int           `mapstructure:"tps"`
	Level   LevelSection  `mapstructure:"level"`
	Levels  LevelsSection `mapstructure:"levels"`
	Save    SaveSection   `mapstructure:"save"`
}

// LevelSection 当前关卡配置
type LevelSection struct {
	ID      string       `mapstructure:"id"`
	EndMode LevelEndMode `mapstructure:"end_mode"`
}

// LevelsSection 关卡文件来源
// Dir 为空时使用内嵌的关卡数据
type LevelsSection struct {
	Dir   string `mapstructure:"dir"`
	Watch bool   `mapstructure:"watch"`
}

// SaveSection 存档配置
type SaveSection struct {
	AppName string `mapstructure:"app_name"`
}

// 默认值
const (
	DefaultLevelID     = "level0"
	DefaultSaveAppName = "starrust"
	configFileName     = "starrust"
	envPrefix          = "STARRUST"
)

// NewFlagSet 创建命令行参数集
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "配置文件路径（默认查找 ./starrust.yaml）")
	fs.BoolP("verbose", "v", false, "输出调试日志")
	fs.String("level", DefaultLevelID, "启动关卡ID")
	fs.String("end-mode", string(LevelEndMenu), "关卡结束后的状态：menu 或 paused")
	fs.Int("tps", TicksPerSecond, "模拟频率")
	fs.String("levels-dir", "", "从目录加载关卡YAML（为空时使用内嵌关卡）")
	fs.Bool("watch-levels", false, "监听关卡目录并热重载")
	return fs
}

// LoadAppConfig 合并参数、环境变量和配置文件
// flags 必须已经 Parse
func LoadAppConfig(flags *pflag.FlagSet) (*AppConfig, error) {
	v := viper.New()
	setAppDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"verbose":        "verbose",
		"level.id":       "level",
		"level.end_mode": "end-mode",
		"tps":            "tps",
		"levels.dir":     "levels-dir",
		"levels.watch":   "watch-levels",
	}
	for key, flagName := range bindings {
		if f := flags.Lookup(flagName); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
			}
		}
	}

	configFile, _ := flags.GetString("config")
	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode app config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	return &cfg, nil
}

// Validate 检查配置取值
func (c *AppConfig) Validate() error {
	switch c.Level.EndMode {
	case LevelEndMenu, LevelEndPaused:
	default:
		return fmt.Errorf("level.end_mode must be %q or %q, got %q", LevelEndMenu, LevelEndPaused, c.Level.EndMode)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Level.ID == "" {
		return fmt.Errorf("level.id is required")
	}
	if c.Levels.Watch && c.Levels.Dir == "" {
		return fmt.Errorf("levels.watch requires levels.dir")
	}
	return nil
}

func setAppDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("tps", TicksPerSecond)
	v.SetDefault("level.id", DefaultLevelID)
	v.SetDefault("level.end_mode", string(LevelEndMenu))
	v.SetDefault("levels.dir", "")
	v.SetDefault("levels.watch", false)
	v.SetDefault("save.app_name", DefaultSaveAppName)
}

// readConfigFile 指定路径时必须存在；未指定时 starrust.yaml 可选
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}
