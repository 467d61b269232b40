package podcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigPresets(t *testing.T) {
	def := DefaultConfig()
	assert.True(t, def.Enabled)
	assert.Equal(t, 1000, def.MaxSize)
	assert.Equal(t, 5*time.Minute, def.DefaultTTL)

	prod := ProductionConfig()
	assert.True(t, prod.Enabled)
	assert.Greater(t, prod.MaxSize, def.MaxSize)
	assert.Greater(t, prod.DefaultTTL, def.DefaultTTL)

	assert.False(t, DisabledConfig().Enabled)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, ProductionConfig().Validate())
	assert.NoError(t, DisabledConfig().Validate(), "disabled config needs no sizes")

	bad := Config{Enabled: true, MaxSize: 0, DefaultTTL: time.Minute}
	assert.Error(t, bad.Validate())

	bad = Config{Enabled: true, MaxSize: 10, DefaultTTL: -time.Second}
	assert.Error(t, bad.Validate())
}
