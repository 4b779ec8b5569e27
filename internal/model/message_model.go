package model

type Message struct {
	Id        uint   `gorm:"primaryKey;autoIncrement"`
	SessionId string `gorm:"type:text;not null;index"`
	ChatId    string `gorm:"type:text;not null;index"`
	Role      string `gorm:"type:varchar(50);not null"`
	Content   string `gorm:"type:text;not null"`
}

func (Message) TableName() string {
	return "messages"
}
