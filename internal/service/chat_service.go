package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"afaq-chatbot-be/internal/constant"
	"afaq-chatbot-be/internal/dto"
	"afaq-chatbot-be/internal/entity"
	"afaq-chatbot-be/internal/pkg/logger"
	"afaq-chatbot-be/internal/repository/contract"
	"afaq-chatbot-be/pkg/llm"
	"afaq-chatbot-be/pkg/scraper"

	"github.com/google/uuid"
)

// IChatService defines the chat orchestration interface
type IChatService interface {
	NewChatId() string
	SendMessage(ctx context.Context, sessionId string, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetChatHistory(ctx context.Context, sessionId, chatId string) ([]dto.TurnResponse, error)
	GetSessionHistory(ctx context.Context, sessionId string) ([]dto.TurnResponse, error)
	ListChats(ctx context.Context, sessionId string) ([]dto.ChatSummaryResponse, error)
	DeleteChat(ctx context.Context, sessionId, chatId string) ([]dto.ChatSummaryResponse, error)
	ClearSession(ctx context.Context, sessionId string) error
	WebsiteContent(ctx context.Context) string
}

type chatService struct {
	conversationRepo contract.ConversationRepository
	llmProvider      llm.LLMProvider
	siteSummarizer   scraper.SiteSummarizer
	log              logger.ILogger
}

func NewChatService(
	conversationRepo contract.ConversationRepository,
	llmProvider llm.LLMProvider,
	siteSummarizer scraper.SiteSummarizer,
	log logger.ILogger,
) IChatService {
	return &chatService{
		conversationRepo: conversationRepo,
		llmProvider:      llmProvider,
		siteSummarizer:   siteSummarizer,
		log:              log,
	}
}

// NewChatId mints a chat id for the client. Nothing is persisted until the
// first message arrives on it.
func (cs *chatService) NewChatId() string {
	return uuid.NewString()
}

func (cs *chatService) SendMessage(ctx context.Context, sessionId string, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	chatId := request.ChatId
	message := request.Message

	// 1. Resolve the chat row, creating or retitling as the titling policy
	// dictates. A missing or unknown chat id always gets a fresh one.
	var chat *entity.Chat
	if chatId != "" {
		found, err := cs.conversationRepo.FindChat(ctx, sessionId, chatId)
		if err != nil {
			return nil, err
		}
		chat = found
	}

	if chat == nil {
		chatId = cs.NewChatId()
		err := cs.conversationRepo.CreateChat(ctx, &entity.Chat{
			ChatId:    chatId,
			SessionId: sessionId,
			Title:     chatTitle(message),
			CreatedAt: time.Now(),
		})
		if err != nil {
			return nil, err
		}
	} else if isPlaceholderTitle(chat.Title) {
		if err := cs.conversationRepo.RenameChat(ctx, chatId, chatTitle(message)); err != nil {
			return nil, err
		}
	}

	// 2. Persist the user turn before anything that can be slow or flaky.
	err := cs.conversationRepo.AppendMessage(ctx, &entity.Message{
		SessionId: sessionId,
		ChatId:    chatId,
		Role:      constant.ChatMessageRoleUser,
		Content:   message,
	})
	if err != nil {
		return nil, err
	}

	// 3. Assemble context and generate. Generation failures degrade into an
	// apologetic reply; the turn itself never errors past this point.
	history, err := cs.conversationRepo.GetChatHistory(ctx, sessionId, chatId)
	if err != nil {
		return nil, err
	}
	messages := cs.buildContext(ctx, history, message)

	reply, err := cs.llmProvider.Chat(ctx, messages)
	if err != nil {
		cs.log.Warn("chat", "generation failed, degrading reply", map[string]interface{}{
			"session_id": sessionId,
			"chat_id":    chatId,
			"error":      err.Error(),
		})
		reply = fmt.Sprintf("Couldn't generate response. Error: %v", err)
	}

	// 4. Persist the assistant turn, degraded or not.
	err = cs.conversationRepo.AppendMessage(ctx, &entity.Message{
		SessionId: sessionId,
		ChatId:    chatId,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   reply,
	})
	if err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{
		Reply:     reply,
		ChatId:    chatId,
		SessionId: sessionId,
	}, nil
}

func (cs *chatService) GetChatHistory(ctx context.Context, sessionId, chatId string) ([]dto.TurnResponse, error) {
	history, err := cs.conversationRepo.GetChatHistory(ctx, sessionId, chatId)
	if err != nil {
		return nil, err
	}
	return toTurns(history), nil
}

func (cs *chatService) GetSessionHistory(ctx context.Context, sessionId string) ([]dto.TurnResponse, error) {
	history, err := cs.conversationRepo.GetSessionHistory(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return toTurns(history), nil
}

func (cs *chatService) ListChats(ctx context.Context, sessionId string) ([]dto.ChatSummaryResponse, error) {
	chats, err := cs.conversationRepo.ListChats(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return toChatSummaries(chats), nil
}

func (cs *chatService) DeleteChat(ctx context.Context, sessionId, chatId string) ([]dto.ChatSummaryResponse, error) {
	if err := cs.conversationRepo.DeleteChat(ctx, sessionId, chatId); err != nil {
		return nil, err
	}
	return cs.ListChats(ctx, sessionId)
}

func (cs *chatService) ClearSession(ctx context.Context, sessionId string) error {
	return cs.conversationRepo.ClearSession(ctx, sessionId)
}

// WebsiteContent scrapes the site fresh, bypassing the summary cache. Used by
// the diagnostic endpoint only.
func (cs *chatService) WebsiteContent(ctx context.Context) string {
	return cs.siteSummarizer.Fetch(ctx)
}

// chatTitle derives a chat title from its first user message: at most
// ChatTitleMaxLen characters plus an ellipsis when truncated.
func chatTitle(message string) string {
	title := message
	if runes := []rune(message); len(runes) > constant.ChatTitleMaxLen {
		title = string(runes[:constant.ChatTitleMaxLen]) + "..."
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return constant.PlaceholderChatTitle
	}
	return title
}

// isPlaceholderTitle reports whether a title is still eligible for automatic
// replacement. Once a real title is set it is never recomputed.
func isPlaceholderTitle(title string) bool {
	trimmed := strings.TrimSpace(title)
	return trimmed == "" || strings.EqualFold(trimmed, constant.PlaceholderChatTitle)
}

func toTurns(history []*entity.Message) []dto.TurnResponse {
	turns := make([]dto.TurnResponse, len(history))
	for i, m := range history {
		turns[i] = dto.TurnResponse{Role: m.Role, Content: m.Content}
	}
	return turns
}

func toChatSummaries(chats []*entity.Chat) []dto.ChatSummaryResponse {
	summaries := make([]dto.ChatSummaryResponse, len(chats))
	for i, c := range chats {
		summaries[i] = dto.ChatSummaryResponse{
			ChatId:    c.ChatId,
			Title:     c.Title,
			CreatedAt: c.CreatedAt,
		}
	}
	return summaries
}
