package telegram

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"immutabot/core"
	"immutabot/modules"
)

const pollTimeoutSeconds = 60

// Adapter bridges Telegram long polling and the core bot. It is also the
// core.Responder for everything the bot sends back.
type Adapter struct {
	API  *tgbotapi.BotAPI
	Core *core.Bot
	Log  zerolog.Logger
}

func NewAdapter(api *tgbotapi.BotAPI, coreBot *core.Bot, log zerolog.Logger) *Adapter {
	return &Adapter{
		API:  api,
		Core: coreBot,
		Log:  log,
	}
}

// Start consumes the update channel until it closes. Each message is
// handled on its own goroutine; ordering across updates is not guaranteed.
func (a *Adapter) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds

	updates := a.API.GetUpdatesChan(u)
	a.Log.Info().Str("username", a.API.Self.UserName).Msg("starting telegram adapter")

	for update := range updates {
		if update.Message == nil {
			continue
		}
		msg := convertMessage(update.Message)
		go a.Core.HandleMessage(msg, a)
	}
	return nil
}

// Stop ends long polling; Start returns once the channel drains.
func (a *Adapter) Stop() {
	a.API.StopReceivingUpdates()
}

func (a *Adapter) SendText(chatID int64, text string) error {
	_, err := a.API.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (a *Adapter) SendQuizPoll(chatID int64, poll modules.QuizPoll) error {
	cfg := tgbotapi.NewPoll(chatID, poll.Question, poll.Options...)
	cfg.Type = "quiz"
	cfg.IsAnonymous = false
	cfg.CorrectOptionID = int64(poll.CorrectOption)
	cfg.Explanation = poll.Explanation

	_, err := a.API.Send(cfg)
	return err
}

func convertMessage(m *tgbotapi.Message) core.IncomingMessage {
	msg := core.IncomingMessage{
		ChatID:    m.Chat.ID,
		Text:      m.Text,
		Timestamp: time.Unix(int64(m.Date), 0).UTC(),
	}
	if m.From != nil {
		msg.From = core.Author{ID: m.From.ID, Username: m.From.UserName}
	}
	if m.ForwardFrom != nil {
		f := core.Author{ID: m.ForwardFrom.ID, Username: m.ForwardFrom.UserName}
		msg.ForwardedFrom = &f
	}
	if m.ReplyToMessage != nil {
		reply := convertMessage(m.ReplyToMessage)
		msg.ReplyTo = &reply
	}
	return msg
}
