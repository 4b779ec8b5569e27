package controller

import (
	"afaq-chatbot-be/internal/dto"
	"afaq-chatbot-be/internal/pkg/serverutils"
	"afaq-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetSession(ctx *fiber.Ctx) error
	GetSessionHistory(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	ListChats(ctx *fiber.Ctx) error
	NewChat(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	ClearChats(ctx *fiber.Ctx) error
	DeleteChat(ctx *fiber.Ctx) error
	WebsiteContent(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/session", c.GetSession)
	r.Get("/history", c.GetSessionHistory)
	r.Get("/history/:chat_id", c.GetChatHistory)
	r.Get("/chats", c.ListChats)
	r.Post("/new-chat", c.NewChat)
	r.Post("/message", c.SendMessage)
	r.Delete("/chats", c.ClearChats)
	r.Delete("/chat/:chat_id", c.DeleteChat)
	r.Get("/website-content", c.WebsiteContent)
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	sessionId := serverutils.ResolveSessionID(ctx)
	serverutils.SetSessionCookie(ctx, sessionId)
	return ctx.JSON(fiber.Map{"session_id": sessionId})
}

func (c *chatController) GetSessionHistory(ctx *fiber.Ctx) error {
	sessionId := serverutils.SessionID(ctx)
	if sessionId == "" {
		// First contact: mint the session and hand back an empty history.
		sessionId = serverutils.ResolveSessionID(ctx)
		serverutils.SetSessionCookie(ctx, sessionId)
		return ctx.JSON(dto.SessionHistoryResponse{
			SessionId: sessionId,
			Messages:  []dto.TurnResponse{},
		})
	}

	messages, err := c.chatService.GetSessionHistory(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	serverutils.SetSessionCookie(ctx, sessionId)
	return ctx.JSON(dto.SessionHistoryResponse{
		SessionId: sessionId,
		Messages:  messages,
	})
}

func (c *chatController) GetChatHistory(ctx *fiber.Ctx) error {
	sessionId := serverutils.SessionID(ctx)
	if sessionId == "" {
		return serverutils.ErrNoSession
	}

	chatId := ctx.Params("chat_id")
	messages, err := c.chatService.GetChatHistory(ctx.Context(), sessionId, chatId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ChatHistoryResponse{
		SessionId: sessionId,
		ChatId:    chatId,
		Messages:  messages,
	})
}

func (c *chatController) ListChats(ctx *fiber.Ctx) error {
	sessionId := serverutils.SessionID(ctx)
	if sessionId == "" {
		return ctx.JSON(dto.ListChatsResponse{Chats: []dto.ChatSummaryResponse{}})
	}

	chats, err := c.chatService.ListChats(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ListChatsResponse{Chats: chats})
}

// NewChat mints a chat id only; no row is persisted until the first message
// is sent on it.
func (c *chatController) NewChat(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.NewChatResponse{ChatId: c.chatService.NewChatId()})
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	sessionId := serverutils.ResolveSessionID(ctx)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrEmptyMessage
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.ErrEmptyMessage
	}

	res, err := c.chatService.SendMessage(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	serverutils.SetSessionCookie(ctx, sessionId)
	return ctx.JSON(res)
}

func (c *chatController) ClearChats(ctx *fiber.Ctx) error {
	sessionId := serverutils.SessionID(ctx)
	if sessionId == "" {
		return serverutils.ErrNoSessionFound
	}

	if err := c.chatService.ClearSession(ctx.Context(), sessionId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"message": "All chat history cleared for this session."})
}

func (c *chatController) DeleteChat(ctx *fiber.Ctx) error {
	sessionId := serverutils.SessionID(ctx)
	if sessionId == "" {
		return serverutils.ErrNoSession
	}

	chatId := ctx.Params("chat_id")
	chats, err := c.chatService.DeleteChat(ctx.Context(), sessionId, chatId)
	if err != nil {
		return err
	}

	serverutils.SetSessionCookie(ctx, sessionId)
	return ctx.JSON(dto.DeleteChatResponse{
		Message: "Chat deleted",
		ChatId:  chatId,
		Chats:   chats,
	})
}

func (c *chatController) WebsiteContent(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"content": c.chatService.WebsiteContent(ctx.Context())})
}
