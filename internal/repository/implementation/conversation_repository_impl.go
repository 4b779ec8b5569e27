package implementation

import (
	"context"
	"errors"

	"afaq-chatbot-be/internal/entity"
	"afaq-chatbot-be/internal/mapper"
	"afaq-chatbot-be/internal/model"
	"afaq-chatbot-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationRepositoryImpl) AppendMessage(ctx context.Context, message *entity.Message) error {
	m := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *ConversationRepositoryImpl) GetChatHistory(ctx context.Context, sessionId, chatId string) ([]*entity.Message, error) {
	var models []*model.Message
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND chat_id = ?", sessionId, chatId).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}

func (r *ConversationRepositoryImpl) GetSessionHistory(ctx context.Context, sessionId string) ([]*entity.Message, error) {
	var models []*model.Message
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}

func (r *ConversationRepositoryImpl) CreateChat(ctx context.Context, chat *entity.Chat) error {
	m := r.mapper.ChatToModel(chat)
	// Insert-or-ignore so a first-message race on the same fresh chat_id
	// cannot blow up on the primary key.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "chat_id"}}, DoNothing: true}).
		Create(m).Error
	if err != nil {
		return err
	}
	*chat = *r.mapper.ChatToEntity(m)
	return nil
}

func (r *ConversationRepositoryImpl) FindChat(ctx context.Context, sessionId, chatId string) (*entity.Chat, error) {
	var m model.Chat
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND chat_id = ?", sessionId, chatId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatToEntity(&m), nil
}

func (r *ConversationRepositoryImpl) ListChats(ctx context.Context, sessionId string) ([]*entity.Chat, error) {
	var models []*model.Chat
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ChatsToEntities(models), nil
}

func (r *ConversationRepositoryImpl) RenameChat(ctx context.Context, chatId, title string) error {
	return r.db.WithContext(ctx).
		Model(&model.Chat{}).
		Where("chat_id = ?", chatId).
		Update("title", title).Error
}

func (r *ConversationRepositoryImpl) DeleteChat(ctx context.Context, sessionId, chatId string) error {
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND chat_id = ?", sessionId, chatId).
		Delete(&model.Message{}).Error
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("session_id = ? AND chat_id = ?", sessionId, chatId).
		Delete(&model.Chat{}).Error
}

func (r *ConversationRepositoryImpl) ClearSession(ctx context.Context, sessionId string) error {
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Delete(&model.Message{}).Error
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Delete(&model.Chat{}).Error
}
