package moderation

import (
	"fmt"
	"time"

	domain "github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/mitchellh/mapstructure"
)

const (
	DefaultDebounce        = 500 * time.Millisecond
	DefaultClassifyTimeout = 5 * time.Second
	DefaultCensorTimeout   = 3 * time.Second
	DefaultLargeEditDelta  = 5
)

// Settings tunes one pipeline instance. Zero values fall back to defaults.
type Settings struct {
	Debounce        time.Duration `mapstructure:"debounce"`
	ClassifyTimeout time.Duration `mapstructure:"classify_timeout"`
	CensorTimeout   time.Duration `mapstructure:"censor_timeout"`
	CacheBound      int           `mapstructure:"cache_bound"`
	CensorLevel     string        `mapstructure:"censor_level"`
	LargeEditDelta  int           `mapstructure:"large_edit_delta"`
}

// DecodeSettings builds Settings from a loosely-typed configuration map.
func DecodeSettings(raw map[string]interface{}) (Settings, error) {
	var s Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     &s,
	})
	if err != nil {
		return Settings{}, fmt.Errorf("failed to build settings decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Settings{}, fmt.Errorf("failed to decode moderation settings: %w", err)
	}
	if _, err := domain.ParseCensorLevel(s.CensorLevel); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) withDefaults() Settings {
	if s.Debounce <= 0 {
		s.Debounce = DefaultDebounce
	}
	if s.ClassifyTimeout <= 0 {
		s.ClassifyTimeout = DefaultClassifyTimeout
	}
	if s.CensorTimeout <= 0 {
		s.CensorTimeout = DefaultCensorTimeout
	}
	if s.CacheBound <= 0 {
		s.CacheBound = DefaultCacheBound
	}
	if s.LargeEditDelta <= 0 {
		s.LargeEditDelta = DefaultLargeEditDelta
	}
	return s
}

func (s Settings) censorLevel() domain.CensorLevel {
	level, err := domain.ParseCensorLevel(s.CensorLevel)
	if err != nil {
		return domain.CensorAuto
	}
	return level
}
