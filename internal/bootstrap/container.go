package bootstrap

import (
	"afaq-chatbot-be/internal/config"
	"afaq-chatbot-be/internal/controller"
	"afaq-chatbot-be/internal/pkg/logger"
	"afaq-chatbot-be/internal/repository/implementation"
	"afaq-chatbot-be/internal/service"
	"afaq-chatbot-be/pkg/llm/groq"
	"afaq-chatbot-be/pkg/scraper"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	SystemController controller.ISystemController

	// Shared facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	conversationRepo := implementation.NewConversationRepository(db)

	siteSummarizer := scraper.NewWebsiteScraper(
		cfg.Scraper.WebsiteURL,
		cfg.Scraper.Timeout,
		cfg.Scraper.CacheTTL,
	)

	llmProvider := groq.NewGroqProvider(
		cfg.Groq.APIKey,
		cfg.Groq.BaseURL,
		cfg.Groq.Model,
		cfg.Groq.MaxTokens,
	)

	chatService := service.NewChatService(conversationRepo, llmProvider, siteSummarizer, sysLogger)

	return &Container{
		ChatController:   controller.NewChatController(chatService),
		SystemController: controller.NewSystemController(),
		Logger:           sysLogger,
	}
}
