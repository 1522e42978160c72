package classifier_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/feedguard/feedguard/pkg/domain/moderation"
	"github.com/feedguard/feedguard/pkg/infra/classifier"
	"github.com/feedguard/feedguard/pkg/infra/httpx"
	"github.com/feedguard/feedguard/pkg/infra/httpx/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestClient(httpClient httpx.Client) *classifier.HTTPClient {
	return classifier.NewHTTPClient(
		httpClient,
		logrus.New(),
		httpx.NewCircuitBreaker("classifier-test", 30*time.Second, 10),
		classifier.Config{BaseURL: "http://toxicity.local", Token: "test-token"},
	)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestHTTPClient_Classify_MapsPayload(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	c := newTestClient(mockClient)

	payload := `{
		"results": {
			"insult": {"probability": 0.91, "prediction": true},
			"threat": {"probability": 0.12, "prediction": false}
		},
		"summary": {
			"is_toxic": true,
			"toxicity_level": "toxic",
			"detected_categories": ["insult"]
		},
		"censored_text": "You are an ****"
	}`
	mockClient.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, payload), nil).Once()

	verdict, err := c.Classify(context.Background(), "You are an idiot")

	assert.NoError(t, err)
	assert.True(t, verdict.IsToxic)
	assert.Equal(t, moderation.LevelToxic, verdict.Level)
	assert.Equal(t, []string{"insult"}, verdict.DetectedCategories)
	assert.Equal(t, "You are an ****", verdict.CensoredText)
	// detection flags derive from the threshold, not from the wire prediction
	assert.True(t, verdict.CategoryScores["insult"].Detected)
	assert.False(t, verdict.CategoryScores["threat"].Detected)
	assert.InDelta(t, 0.91, verdict.CategoryScores["insult"].Probability, 1e-9)
	mockClient.AssertExpectations(t)
}

func TestHTTPClient_Classify_SendsTokenAndPath(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	c := newTestClient(mockClient)

	payload := `{"summary":{"is_toxic":false,"toxicity_level":"not_toxic"}}`
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://toxicity.local/predict" &&
			req.Header.Get("Token") == "test-token" &&
			req.Header.Get("Content-Type") == "application/json"
	})).Return(jsonResponse(http.StatusOK, payload), nil).Once()

	verdict, err := c.Classify(context.Background(), "Have a great day")

	assert.NoError(t, err)
	assert.False(t, verdict.IsToxic)
	assert.Equal(t, moderation.LevelNotToxic, verdict.Level)
	mockClient.AssertExpectations(t)
}

func TestHTTPClient_Classify_EmptyInput(t *testing.T) {
	c := newTestClient(new(mocks.MockHTTPClient))

	_, err := c.Classify(context.Background(), "")

	assert.ErrorIs(t, err, classifier.ErrEmptyInput)
}

func TestHTTPClient_Classify_Non200(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	c := newTestClient(mockClient)

	mockClient.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusServiceUnavailable, `{"error":"overloaded"}`), nil).Once()

	_, err := c.Classify(context.Background(), "anything")

	assert.Error(t, err)
	assert.ErrorIs(t, err, classifier.ErrClassifierCall)
}

func TestHTTPClient_Classify_MalformedBody(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	c := newTestClient(mockClient)

	mockClient.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusOK, "not json at all"), nil).Once()

	_, err := c.Classify(context.Background(), "anything")

	assert.Error(t, err)
	assert.ErrorIs(t, err, classifier.ErrMalformedReply)
}

func TestHTTPClient_Classify_TransportError(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	c := newTestClient(mockClient)

	mockClient.On("Do", mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	_, err := c.Classify(context.Background(), "anything")

	assert.Error(t, err)
}

func TestHTTPClient_Censor_Success(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	c := newTestClient(mockClient)

	payload := `{"original_text":"You are an idiot","censored_text":"You are an ****"}`
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://toxicity.local/censor"
	})).Return(jsonResponse(http.StatusOK, payload), nil).Once()

	censored, err := c.Censor(context.Background(), "You are an idiot", moderation.CensorMedium)

	assert.NoError(t, err)
	assert.Equal(t, "You are an ****", censored)
	mockClient.AssertExpectations(t)
}

func TestHTTPClient_Censor_Failure(t *testing.T) {
	mockClient := new(mocks.MockHTTPClient)
	c := newTestClient(mockClient)

	mockClient.On("Do", mock.Anything).
		Return(nil, errors.New("timeout")).Once()

	_, err := c.Censor(context.Background(), "You are an idiot", moderation.CensorAuto)

	assert.Error(t, err)
}
