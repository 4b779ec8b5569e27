package dto

import "time"

// TurnResponse is one {role, content} pair of a conversation history.
type TurnResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatSummaryResponse struct {
	ChatId    string    `json:"chat_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	ChatId  string `form:"chat_id"`
	Message string `form:"message" validate:"required"`
}

type SendMessageResponse struct {
	Reply     string `json:"reply"`
	ChatId    string `json:"chat_id"`
	SessionId string `json:"session_id"`
}

type SessionHistoryResponse struct {
	SessionId string         `json:"session_id"`
	Messages  []TurnResponse `json:"messages"`
}

type ChatHistoryResponse struct {
	SessionId string         `json:"session_id"`
	ChatId    string         `json:"chat_id"`
	Messages  []TurnResponse `json:"messages"`
}

type ListChatsResponse struct {
	Chats []ChatSummaryResponse `json:"chats"`
}

type NewChatResponse struct {
	ChatId string `json:"chat_id"`
}

type DeleteChatResponse struct {
	Message string                `json:"message"`
	ChatId  string                `json:"chat_id"`
	Chats   []ChatSummaryResponse `json:"chats"`
}
