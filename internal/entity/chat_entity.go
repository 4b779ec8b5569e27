package entity

import "time"

// Chat is one conversation thread owned by a guest session. A row exists only
// once the first message of the thread has been sent; ids minted for empty
// threads are never persisted.
type Chat struct {
	ChatId    string
	SessionId string
	Title     string
	CreatedAt time.Time
}
