package entity

// Message is one immutable turn in a conversation. Id is assigned by the
// store and defines the total append order within a session.
type Message struct {
	Id        uint
	SessionId string
	ChatId    string
	Role      string
	Content   string
}
