package classifier

import (
	"context"
	"errors"
	"time"

	"github.com/feedguard/feedguard/pkg/domain/moderation"
)

var (
	ErrClassifierCall = errors.New("classifier service call failed")
	ErrMalformedReply = errors.New("classifier returned a malformed payload")
	ErrEmptyInput     = errors.New("classifier input must not be empty")
)

// Client talks to the remote toxicity service. Classify maps the /predict
// payload into a Verdict; Censor asks /censor for a masked variant of the
// text at the requested level.
//
// Implementations may fail; use NewFailOpen for the product policy that
// moderation failure never blocks posting.
type Client interface {
	Classify(ctx context.Context, text string) (moderation.Verdict, error)
	Censor(ctx context.Context, text string, level moderation.CensorLevel) (string, error)
}

// Config carries the remote endpoint settings.
type Config struct {
	BaseURL string `mapstructure:"base_url"`
	Token   string `mapstructure:"token"`

	// DetectionThreshold marks a category as detected once its probability
	// reaches it. IsToxic and the level always come from the service's own
	// summary judgment.
	DetectionThreshold float64 `mapstructure:"detection_threshold"`

	ClassifyTimeout time.Duration `mapstructure:"classify_timeout"`
	CensorTimeout   time.Duration `mapstructure:"censor_timeout"`
}

const (
	DefaultDetectionThreshold = 0.5
	DefaultClassifyTimeout    = 5 * time.Second
	DefaultCensorTimeout      = 3 * time.Second
)

func (c *Config) withDefaults() Config {
	out := *c
	if out.DetectionThreshold <= 0 {
		out.DetectionThreshold = DefaultDetectionThreshold
	}
	if out.ClassifyTimeout <= 0 {
		out.ClassifyTimeout = DefaultClassifyTimeout
	}
	if out.CensorTimeout <= 0 {
		out.CensorTimeout = DefaultCensorTimeout
	}
	return out
}
