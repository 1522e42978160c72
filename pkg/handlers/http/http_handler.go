package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Posts
	CreatePostHandler Handler
	ListPostsHandler  Handler
	GetPostHandler    Handler
	DeletePostHandler Handler

	// Comments
	CreateCommentHandler Handler
	ListCommentsHandler  Handler

	// Moderation
	ModerationPreviewHandler Handler

	// Notifications
	ListNotificationsHandler    Handler
	MarkNotificationReadHandler Handler

	// Misc
	GetVersionHandler Handler
}
