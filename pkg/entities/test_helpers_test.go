package entities

import (
	"github.com/decker502/starrust/pkg/game"
)

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
