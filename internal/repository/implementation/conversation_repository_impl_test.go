package implementation

import (
	"context"
	"testing"
	"time"

	"afaq-chatbot-be/internal/entity"
	"afaq-chatbot-be/internal/model"
	"afaq-chatbot-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) contract.ConversationRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: is its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Chat{}, &model.Message{}))

	return NewConversationRepository(db)
}

func appendTurn(t *testing.T, repo contract.ConversationRepository, sessionId, chatId, role, content string) {
	t.Helper()
	err := repo.AppendMessage(context.Background(), &entity.Message{
		SessionId: sessionId,
		ChatId:    chatId,
		Role:      role,
		Content:   content,
	})
	require.NoError(t, err)
}

func TestChatHistoryPreservesAppendOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	appendTurn(t, repo, "s1", "c1", "user", "first")
	appendTurn(t, repo, "s1", "c1", "assistant", "second")
	appendTurn(t, repo, "s1", "c1", "user", "third")

	history, err := repo.GetChatHistory(ctx, "s1", "c1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, "second", history[1].Content)
	assert.Equal(t, "third", history[2].Content)
	assert.Less(t, history[0].Id, history[1].Id)
	assert.Less(t, history[1].Id, history[2].Id)
}

func TestChatHistoryUnknownChatIsEmptyNotError(t *testing.T) {
	repo := newTestRepo(t)

	history, err := repo.GetChatHistory(context.Background(), "s1", "missing")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSessionHistoryUnionAcrossChats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	appendTurn(t, repo, "s1", "c1", "user", "a")
	appendTurn(t, repo, "s1", "c2", "user", "b")
	appendTurn(t, repo, "s1", "c1", "assistant", "c")
	appendTurn(t, repo, "s2", "c3", "user", "other session")

	history, err := repo.GetSessionHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	// One global append order, interleaved across chats.
	assert.Equal(t, "a", history[0].Content)
	assert.Equal(t, "b", history[1].Content)
	assert.Equal(t, "c", history[2].Content)
}

func TestCreateChatAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.CreateChat(ctx, &entity.Chat{
		ChatId:    "c1",
		SessionId: "s1",
		Title:     "Dubai safari",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	chat, err := repo.FindChat(ctx, "s1", "c1")
	require.NoError(t, err)
	require.NotNil(t, chat)
	assert.Equal(t, "Dubai safari", chat.Title)

	t.Run("find for wrong session returns nil", func(t *testing.T) {
		chat, err := repo.FindChat(ctx, "s2", "c1")
		require.NoError(t, err)
		assert.Nil(t, chat)
	})

	t.Run("duplicate insert is absorbed", func(t *testing.T) {
		err := repo.CreateChat(ctx, &entity.Chat{
			ChatId:    "c1",
			SessionId: "s1",
			Title:     "racing title",
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		chat, err := repo.FindChat(ctx, "s1", "c1")
		require.NoError(t, err)
		require.NotNil(t, chat)
		assert.Equal(t, "Dubai safari", chat.Title)
	})
}

func TestListChatsMostRecentFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now()
	require.NoError(t, repo.CreateChat(ctx, &entity.Chat{
		ChatId: "old", SessionId: "s1", Title: "old", CreatedAt: base.Add(-time.Hour),
	}))
	require.NoError(t, repo.CreateChat(ctx, &entity.Chat{
		ChatId: "new", SessionId: "s1", Title: "new", CreatedAt: base,
	}))

	chats, err := repo.ListChats(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "new", chats[0].ChatId)
	assert.Equal(t, "old", chats[1].ChatId)
}

func TestRenameChat(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateChat(ctx, &entity.Chat{
		ChatId: "c1", SessionId: "s1", Title: "New Chat", CreatedAt: time.Now(),
	}))

	require.NoError(t, repo.RenameChat(ctx, "c1", "Desert safari booking"))

	chat, err := repo.FindChat(ctx, "s1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Desert safari booking", chat.Title)

	t.Run("renaming unknown chat is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.RenameChat(ctx, "missing", "whatever"))
	})
}

func TestDeleteChatIsIdempotentAndScoped(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateChat(ctx, &entity.Chat{
		ChatId: "c1", SessionId: "s1", Title: "t", CreatedAt: time.Now(),
	}))
	appendTurn(t, repo, "s1", "c1", "user", "hi")
	appendTurn(t, repo, "s1", "c1", "assistant", "hello")
	appendTurn(t, repo, "s1", "c2", "user", "keep me")

	require.NoError(t, repo.DeleteChat(ctx, "s1", "c1"))
	require.NoError(t, repo.DeleteChat(ctx, "s1", "c1")) // second call, same state

	chat, err := repo.FindChat(ctx, "s1", "c1")
	require.NoError(t, err)
	assert.Nil(t, chat)

	history, err := repo.GetChatHistory(ctx, "s1", "c1")
	require.NoError(t, err)
	assert.Empty(t, history)

	remaining, err := repo.GetSessionHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "keep me", remaining[0].Content)
}

func TestClearSessionIsIdempotentAndIsolated(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, chatId := range []string{"c1", "c2"} {
		require.NoError(t, repo.CreateChat(ctx, &entity.Chat{
			ChatId: chatId, SessionId: "s1", Title: chatId, CreatedAt: time.Now(),
		}))
		appendTurn(t, repo, "s1", chatId, "user", "q")
		appendTurn(t, repo, "s1", chatId, "assistant", "a")
		appendTurn(t, repo, "s1", chatId, "user", "q2")
	}
	require.NoError(t, repo.CreateChat(ctx, &entity.Chat{
		ChatId: "c3", SessionId: "s2", Title: "untouched", CreatedAt: time.Now(),
	}))
	appendTurn(t, repo, "s2", "c3", "user", "still here")

	require.NoError(t, repo.ClearSession(ctx, "s1"))
	require.NoError(t, repo.ClearSession(ctx, "s1")) // second call, same state

	chats, err := repo.ListChats(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, chats)

	history, err := repo.GetSessionHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)

	otherChats, err := repo.ListChats(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, otherChats, 1)

	otherHistory, err := repo.GetSessionHistory(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, otherHistory, 1)
}
