package server

import (
	"fmt"

	"github.com/feedguard/feedguard/pkg/config"
	handlers "github.com/feedguard/feedguard/pkg/handlers/http"
	"github.com/feedguard/feedguard/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type (
	ApiServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	ApiServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewApiServer(di ApiServerDI) *ApiServer {
	return &ApiServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *ApiServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("Starting api server")
	return s.router.Listen(addr)
}

func (s *ApiServer) setupRoutes() {
	s.router.Use(s.middlewareTransport.PanicRecoverMiddleware.Middleware())
	if s.config.Metrics.Enabled {
		s.router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())
	}

	v1 := s.router.Group("/api/v1")
	{
		v1.Get("/version", s.handlerTransport.GetVersionHandler.Handle)

		auth := s.middlewareTransport.AuthMiddleware.Middleware()

		posts := v1.Group("/posts")
		{
			posts.Get("", s.handlerTransport.ListPostsHandler.Handle)
			posts.Post("", auth, s.handlerTransport.CreatePostHandler.Handle)
			posts.Get("/:post_id", s.handlerTransport.GetPostHandler.Handle)
			posts.Delete("/:post_id", auth, s.handlerTransport.DeletePostHandler.Handle)

			comments := posts.Group("/:post_id/comments")
			{
				comments.Get("", s.handlerTransport.ListCommentsHandler.Handle)
				comments.Post("", auth, s.handlerTransport.CreateCommentHandler.Handle)
			}
		}

		moderation := v1.Group("/moderation")
		{
			moderation.Post("/preview", auth, s.handlerTransport.ModerationPreviewHandler.Handle)
		}

		notifications := v1.Group("/notifications", auth)
		{
			notifications.Get("", s.handlerTransport.ListNotificationsHandler.Handle)
			notifications.Put("/:notification_id/read", s.handlerTransport.MarkNotificationReadHandler.Handle)
		}
	}
}

func (s *ApiServer) Shutdown() error {
	return s.router.Shutdown()
}
