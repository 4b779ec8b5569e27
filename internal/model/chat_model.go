package model

import "time"

type Chat struct {
	ChatId    string    `gorm:"type:text;primaryKey"`
	SessionId string    `gorm:"type:text;not null;index"` // Session ownership for data isolation
	Title     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Chat) TableName() string {
	return "chats"
}
