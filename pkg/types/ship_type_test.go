package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShipKindRoundTrip(t *testing.T) {
	for kind, name := range shipKindNames {
		t.Run(name, func(t *testing.T) {
			parsed, err := ParseShipKind(name)
			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
			assert.Equal(t, name, parsed.String())
		})
	}
}

func TestParseShipKindUnknown(t *testing.T) {
	kind, err := ParseShipKind("mothership")
	assert.Error(t, err)
	assert.Equal(t, ShipUnknown, kind)
	assert.Equal(t, "unknown", ShipUnknown.String())
}

func TestBulletTypeString(t *testing.T) {
	assert.Equal(t, "standard", BulletStandard.String())
	assert.Equal(t, "standard_enemy", BulletStandardEnemy.String())
	assert.Equal(t, "unknown", BulletType(42).String())
}
