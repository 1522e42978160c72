package moderation

import (
	"testing"
	"time"

	domain "github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSettings(t *testing.T) {
	s, err := DecodeSettings(map[string]interface{}{
		"debounce":         "250ms",
		"classify_timeout": "2s",
		"cache_bound":      10,
		"censor_level":     "heavy",
	})
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, s.Debounce)
	assert.Equal(t, 2*time.Second, s.ClassifyTimeout)
	assert.Equal(t, 10, s.CacheBound)
	assert.Equal(t, domain.CensorHeavy, s.censorLevel())
}

func TestDecodeSettings_InvalidCensorLevel(t *testing.T) {
	_, err := DecodeSettings(map[string]interface{}{
		"censor_level": "nuclear",
	})
	assert.Error(t, err)
}

func TestSettingsDefaults(t *testing.T) {
	s := Settings{}.withDefaults()
	assert.Equal(t, DefaultDebounce, s.Debounce)
	assert.Equal(t, DefaultClassifyTimeout, s.ClassifyTimeout)
	assert.Equal(t, DefaultCensorTimeout, s.CensorTimeout)
	assert.Equal(t, DefaultCacheBound, s.CacheBound)
	assert.Equal(t, DefaultLargeEditDelta, s.LargeEditDelta)
	assert.Equal(t, domain.CensorAuto, s.censorLevel())
}
