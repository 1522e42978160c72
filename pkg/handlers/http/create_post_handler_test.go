package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/feedguard/feedguard/pkg/common"
	"github.com/feedguard/feedguard/pkg/domain/post"
	"github.com/feedguard/feedguard/pkg/infra/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPostCreator struct {
	mock.Mock
}

func (m *mockPostCreator) Create(ctx context.Context, author jwt.Identity, text string) (*post.Post, error) {
	args := m.Called(ctx, author, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	p, _ := args.Get(0).(*post.Post)
	return p, args.Error(1)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func setupCreatePostApp(creator *mockPostCreator, identity *jwt.Identity) *fiber.App {
	handler := NewCreatePostHandler(testLogger(), creator)
	app := fiber.New()
	app.Post("/posts", func(c *fiber.Ctx) error {
		if identity != nil {
			c.Locals(common.UserContextKey, *identity)
		}
		return handler.Handle(c)
	})
	return app
}

func TestCreatePostHandler_Success(t *testing.T) {
	creator := new(mockPostCreator)
	identity := jwt.Identity{UserID: "user-1", DisplayName: "Ada"}

	created := &post.Post{ID: uuid.New(), AuthorID: "user-1", DisplayedText: "hello"}
	creator.On("Create", mock.Anything, identity, "hello").Return(created, nil)

	app := setupCreatePostApp(creator, &identity)

	body, err := json.Marshal(map[string]string{"text": "hello"})
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, "/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	creator.AssertExpectations(t)
}

func TestCreatePostHandler_MissingIdentity(t *testing.T) {
	creator := new(mockPostCreator)
	app := setupCreatePostApp(creator, nil)

	body := []byte(`{"text":"hello"}`)
	req := httptest.NewRequest(fiber.MethodPost, "/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	creator.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePostHandler_BlankText(t *testing.T) {
	creator := new(mockPostCreator)
	identity := jwt.Identity{UserID: "user-1"}
	app := setupCreatePostApp(creator, &identity)

	body := []byte(`{"text":"   "}`)
	req := httptest.NewRequest(fiber.MethodPost, "/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	creator.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
