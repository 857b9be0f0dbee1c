package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/decker502/starrust/internal/hotreload"
	"github.com/decker502/starrust/pkg/app"
	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/embedded"
	"github.com/decker502/starrust/pkg/logger"
	"github.com/decker502/starrust/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "starrust: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.NewFlagSet(args[0])
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	cfg, err := config.LoadAppConfig(flags)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Verbose); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	// 音频等二进制资源不内嵌，存在 assets/ 目录时从工作目录读取
	var assets fs.FS
	if info, err := os.Stat("assets"); err == nil && info.IsDir() {
		assets = os.DirFS(".")
	}
	embedded.Init(assets, dataFS)

	levels := config.NewLevelRepository(embedded.ReadFile, app.DefaultLevelsDir)
	var reloads scenes.ReloadSource
	if cfg.Levels.Dir != "" {
		levels = config.NewLevelRepository(os.ReadFile, cfg.Levels.Dir)
		if cfg.Levels.Watch {
			watcher, err := hotreload.NewWatcher(cfg.Levels.Dir)
			if err != nil {
				return fmt.Errorf("failed to watch levels: %w", err)
			}
			defer watcher.Close()
			reloads = watcher
		}
	}

	game, err := app.NewApp(cfg, levels, reloads)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("StarRust")
	logger.L().Infow("[Main] starting", "level", cfg.Level.ID, "tps", cfg.TPS, "endMode", cfg.Level.EndMode)
	return ebiten.RunGame(game)
}
