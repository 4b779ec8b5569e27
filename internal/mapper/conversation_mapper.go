package mapper

import (
	"afaq-chatbot-be/internal/entity"
	"afaq-chatbot-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ChatToEntity(c *model.Chat) *entity.Chat {
	if c == nil {
		return nil
	}
	return &entity.Chat{
		ChatId:    c.ChatId,
		SessionId: c.SessionId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConversationMapper) ChatToModel(c *entity.Chat) *model.Chat {
	if c == nil {
		return nil
	}
	return &model.Chat{
		ChatId:    c.ChatId,
		SessionId: c.SessionId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConversationMapper) ChatsToEntities(models []*model.Chat) []*entity.Chat {
	entities := make([]*entity.Chat, len(models))
	for i, c := range models {
		entities[i] = m.ChatToEntity(c)
	}
	return entities
}

func (m *ConversationMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		ChatId:    msg.ChatId,
		Role:      msg.Role,
		Content:   msg.Content,
	}
}

func (m *ConversationMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		ChatId:    msg.ChatId,
		Role:      msg.Role,
		Content:   msg.Content,
	}
}

func (m *ConversationMapper) MessagesToEntities(models []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
