package entities

import (
	"fmt"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/config"
	"github.com/decker502/starrust/pkg/game"
	"github.com/jakecoffman/cp"
)

// BuildWaveScript 将生成器配置转换为波次脚本
// 未指定出生点的指令使用全部出生点
func BuildWaveScript(spawner config.SpawnerConfig, assets *game.AssetTable) ([]components.SpawnInstruction, error) {
	if len(spawner.Instructions) == 0 {
		return nil, fmt.Errorf("spawner %s: %w", spawner.Name, components.ErrEmptyWaveScript)
	}

	all := config.SpawnLocations()
	script := make([]components.SpawnInstruction, 0, len(spawner.Instructions))

	for i, inst := range spawner.Instructions {
		kind, err := inst.ShipKind()
		if err != nil {
			return nil, fmt.Errorf("spawner %s, instruction %d: %w", spawner.Name, i, err)
		}
		factory, err := AIShipFactoryFor(kind)
		if err != nil {
			return nil, fmt.Errorf("spawner %s, instruction %d: %w", spawner.Name, i, err)
		}

		locations := all
		if len(inst.Locations) > 0 {
			locations = make([]cp.Vector, 0, len(inst.Locations))
			for _, idx := range inst.Locations {
				if idx < 0 || idx >= len(all) {
					return nil, fmt.Errorf("spawner %s, instruction %d: location %d out of range", spawner.Name, i, idx)
				}
				locations = append(locations, all[idx])
			}
		}

		clips, models := assets.Audio, assets.Models
		script = append(script, components.SpawnInstruction{
			Label:          kind.String(),
			Locations:      locations,
			ActiveDuration: inst.ActiveDurationValue(),
			SpawnInterval:  inst.SpawnIntervalValue(),
			Spawn: func(pos cp.Vector) components.Bundle {
				return factory(clips, models, pos)
			},
		})
	}
	return script, nil
}

// NewWaveSpawner 根据生成器配置构造生成器组件
func NewWaveSpawner(spawner config.SpawnerConfig, assets *game.AssetTable) (*components.WaveSpawnerComponent, error) {
	script, err := BuildWaveScript(spawner, assets)
	if err != nil {
		return nil, err
	}
	return components.NewWaveSpawnerComponent(spawner.Name, script)
}
