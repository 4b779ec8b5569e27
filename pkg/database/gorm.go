package database

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"afaq-chatbot-be/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

// NewSqliteDB opens (creating if needed) the database file at path. The
// parent directory is created so a fresh checkout can boot with defaults.
func NewSqliteDB(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: getLogger(),
	})
	if err != nil {
		return nil, err
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY
	// churn under concurrent requests while reads stay safe.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// InitStorage creates the chats and messages tables. Idempotent; called once
// during bootstrap before the HTTP listener binds.
func InitStorage(db *gorm.DB) error {
	return db.AutoMigrate(&model.Chat{}, &model.Message{})
}
