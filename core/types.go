package core

import (
	"time"

	"immutabot/modules"
)

// Author identifies a platform user. Username is empty when the user has
// no public handle.
type Author struct {
	ID       int64
	Username string
}

// IncomingMessage is a platform-neutral view of one chat message.
type IncomingMessage struct {
	ChatID        int64
	From          Author
	Text          string
	Timestamp     time.Time
	ForwardedFrom *Author          // set when the message was forwarded from a user
	ReplyTo       *IncomingMessage // set when the message replies to another
}

// Responder sends outbound messages back to the platform.
type Responder interface {
	SendText(chatID int64, text string) error
	SendQuizPoll(chatID int64, poll modules.QuizPoll) error
}
