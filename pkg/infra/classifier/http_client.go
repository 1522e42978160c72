package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/feedguard/feedguard/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	predictPath = "/predict"
	censorPath  = "/censor"
)

// HTTPClient calls the remote toxicity service over HTTP. Concurrent
// Classify calls for identical text are collapsed into one request.
type HTTPClient struct {
	client         httpx.Client
	logger         *logrus.Logger
	circuitBreaker httpx.CircuitBreaker
	config         Config
	inflight       singleflight.Group
}

func NewHTTPClient(
	client httpx.Client,
	logger *logrus.Logger,
	circuitBreaker httpx.CircuitBreaker,
	config Config,
) *HTTPClient {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPClient{
		client:         client,
		logger:         logger,
		circuitBreaker: circuitBreaker,
		config:         config.withDefaults(),
	}
}

func (c *HTTPClient) Classify(ctx context.Context, text string) (moderation.Verdict, error) {
	if text == "" {
		return moderation.Verdict{}, ErrEmptyInput
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.ClassifyTimeout)
	defer cancel()

	result, err, _ := c.inflight.Do(text, func() (interface{}, error) {
		var verdict moderation.Verdict
		execErr := c.circuitBreaker.Execute(func() error {
			var err error
			verdict, err = c.executePredict(ctx, text)
			return err
		})
		if execErr != nil {
			return moderation.Verdict{}, execErr
		}
		return verdict, nil
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logger.WithError(err).Error("toxicity classification failed")
		}
		return moderation.Verdict{}, err
	}

	verdict, ok := result.(moderation.Verdict)
	if !ok {
		return moderation.Verdict{}, fmt.Errorf("%w: unexpected singleflight result", ErrMalformedReply)
	}
	return verdict, nil
}

func (c *HTTPClient) executePredict(ctx context.Context, text string) (moderation.Verdict, error) {
	body, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return moderation.Verdict{}, fmt.Errorf("failed to marshal predict request: %w", err)
	}

	respBody, err := c.post(ctx, predictPath, body)
	if err != nil {
		return moderation.Verdict{}, err
	}

	var parsed predictResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return moderation.Verdict{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	verdict := verdictFromPredict(parsed, c.config.DetectionThreshold)
	if err := verdict.Validate(); err != nil {
		return moderation.Verdict{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	return verdict, nil
}

func (c *HTTPClient) Censor(
	ctx context.Context,
	text string,
	level moderation.CensorLevel,
) (string, error) {
	if text == "" {
		return "", ErrEmptyInput
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.CensorTimeout)
	defer cancel()

	req := censorRequest{Text: text}
	if level != moderation.CensorAuto {
		req.Level = level.String()
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal censor request: %w", err)
	}

	var censored string
	execErr := c.circuitBreaker.Execute(func() error {
		respBody, err := c.post(ctx, censorPath, body)
		if err != nil {
			return err
		}
		var parsed censorResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedReply, err)
		}
		if parsed.CensoredText == "" {
			return fmt.Errorf("%w: empty censored_text", ErrMalformedReply)
		}
		censored = parsed.CensoredText
		return nil
	})
	if execErr != nil {
		if !errors.Is(execErr, context.Canceled) {
			c.logger.WithError(execErr).Error("censoring failed")
		}
		return "", execErr
	}
	return censored, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.BaseURL+path,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Token", c.config.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			return nil, context.Canceled
		}
		return nil, fmt.Errorf("%w: %v", ErrClassifierCall, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"path":        path,
		}).Error("toxicity service returned non-200 status")
		return nil, fmt.Errorf("%w: status %d", ErrClassifierCall, resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: response read error: %v", ErrClassifierCall, err)
	}
	return respBody, nil
}
