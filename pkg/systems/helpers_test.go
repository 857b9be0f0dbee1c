package systems

import (
	"math/rand"
	"time"

	"github.com/decker502/starrust/pkg/components"
	"github.com/decker502/starrust/pkg/ecs"
	"github.com/decker502/starrust/pkg/game"
	"github.com/jakecoffman/cp"
)

// spawnRecord 记录一次生成调用
type spawnRecord struct {
	label string
	pos   cp.Vector
	tick  int
}

// spawnRecorder 记录生成调用的测试 Bundle 工厂
type spawnRecorder struct {
	records []spawnRecord
	tick    int
}

type recordingBundle struct {
	recorder *spawnRecorder
	label string
	pos   cp.Vector
}

func (b recordingBundle) Insert(em *ecs.EntityManager) (ecs.EntityID, error) {
	b.recorder.records = append(b.recorder.records, spawnRecord{label: b.label, pos: b.pos, tick: b.recorder.tick})
	return em.CreateEntity(), nil
}

func (p *spawnRecorder) instruction(label string, active, interval time.Duration, locations ...cp.Vector) components.SpawnInstruction {
	if len(locations) == 0 {
		locations = []cp.Vector{{X: 700, Y: 0}}
	}
	return components.SpawnInstruction{
		Label:          label,
		Locations:      locations,
		ActiveDuration: active,
		SpawnInterval:  interval,
		Spawn: func(pos cp.Vector) components.Bundle {
			return recordingBundle{recorder: p, label: label, pos: pos}
		},
	}
}

func (p *spawnRecorder) count(label string) int {
	n := 0
	for _, r := range p.records {
		if r.label == label {
			n++
		}
	}
	return n
}

func addSpawner(em *ecs.EntityManager, name string, script []components.SpawnInstruction) *components.WaveSpawnerComponent {
	spawner, err := components.NewWaveSpawnerComponent(name, script)
	if err != nil {
		panic(err)
	}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, spawner)
	return spawner
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// testClips / testModels 与 data/resources.yaml 中的ID一致
func testClips() game.AudioClips {
	return game.AudioClips{
		LaserShot:      "SOUND_LASER_SHOT",
		LightExplosion: "SOUND_LIGHT_EXPLOSION",
		LightPow:       "SOUND_LIGHT_POW",
		NoSound:        "SOUND_NONE",
		CoinLarry:      "SOUND_COIN_LARRY",
	}
}

func testModels() game.SceneModels {
	return game.SceneModels{
		DefaultPlayer:      "MODEL_DEFAULT_PLAYER",
		DefaultEnemy:       "MODEL_DEFAULT_ENEMY",
		JetCharger:         "MODEL_JET_CHARGER",
		SpacePlatform:      "MODEL_SPACE_PLATFORM",
		PowerupStar:        "MODEL_POWERUP_STAR",
		DefaultBullet:      "MODEL_DEFAULT_BULLET",
		DefaultEnemyBullet: "MODEL_DEFAULT_ENEMY_BULLET",
	}
}

func testAssetTable() *game.AssetTable {
	return &game.AssetTable{Audio: testClips(), Models: testModels()}
}

// addBody 创建带碰撞体的实体，hp <= 0 时不添加生命值组件
func addBody(em *ecs.EntityManager, pos cp.Vector, rect float64, hitmask components.Faction, damage, hp int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: pos, Scale: 1})
	ecs.AddComponent(em, id, &components.ColliderComponent{
		Rect:    cp.Vector{X: rect, Y: rect},
		Hitmask: hitmask,
		Damage:  damage,
	})
	if hp > 0 {
		ecs.AddComponent(em, id, &components.HealthComponent{
			HP:          hp,
			DeathSound:  "SOUND_DEATH",
			DamageSound: "SOUND_HIT",
		})
	}
	return id
}

func addBullet(em *ecs.EntityManager, pos cp.Vector, hitmask components.Faction) ecs.EntityID {
	id := addBody(em, pos, 8, hitmask, 1, 0)
	ecs.AddComponent(em, id, &components.BulletComponent{})
	return id
}
