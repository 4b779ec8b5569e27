package service

import (
	"context"
	"fmt"

	"afaq-chatbot-be/internal/constant"
	"afaq-chatbot-be/internal/entity"
	"afaq-chatbot-be/pkg/llm"
)

// buildContext assembles the provider-ready message list for one turn:
// system prompt (company identity + scraped website context), the most
// recent persisted turns of the chat, then the just-submitted user turn.
//
// The history window already contains the user turn as its newest entry,
// since the turn is persisted before generation; it is appended again as the
// explicit trailing turn, matching the replay order consumers expect.
func (cs *chatService) buildContext(ctx context.Context, history []*entity.Message, userMessage string) []llm.Message {
	websiteContext := cs.siteSummarizer.Summary(ctx)
	systemPrompt := fmt.Sprintf(constant.SystemPromptTemplate, websiteContext)

	window := history
	if len(window) > constant.HistoryWindowSize {
		window = window[len(window)-constant.HistoryWindowSize:]
	}

	messages := make([]llm.Message, 0, len(window)+2)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range window {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: userMessage,
	})

	return messages
}
