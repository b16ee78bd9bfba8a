package core

import (
	"fmt"
	"math/rand"
	"strings"

	"immutabot/modules"
)

type CommandContext struct {
	Msg       IncomingMessage
	Responder Responder
	Bot       *Bot
	Args      []string
}

type CommandHandler func(ctx CommandContext) error

type CommandRegistry struct {
	commands map[string]CommandHandler
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]CommandHandler),
	}
}

func (r *CommandRegistry) Register(name string, handler CommandHandler) {
	r.commands[strings.ToLower(name)] = handler
}

func (r *CommandRegistry) Has(name string) bool {
	_, exists := r.commands[strings.ToLower(name)]
	return exists
}

// Execute runs the named handler. Handler errors never escape: they are
// logged and the chat gets a generic failure message.
func (r *CommandRegistry) Execute(name string, ctx CommandContext) bool {
	handler, exists := r.commands[strings.ToLower(name)]
	if !exists {
		return false
	}
	if err := handler(ctx); err != nil {
		ctx.Bot.Log.Error().Err(err).Str("command", name).Msg("command failed")
		_ = ctx.Responder.SendText(ctx.Msg.ChatID, msgCommandFailed)
	}
	return true
}

func RegisterDefaultCommands(b *Bot) {
	b.Commands.Register("help", func(ctx CommandContext) error {
		return ctx.Responder.SendText(ctx.Msg.ChatID, helpText)
	})

	b.Commands.Register("quote", b.handleQuote)
	b.Commands.Register("guesswho", b.handleGuessWho)
	b.Commands.Register("stats", b.handleStats)
	b.Commands.Register("authorize", b.handleAuthorize)
	b.Commands.Register("deauthorize", b.handleDeauthorize)

	b.Commands.Register("hug", func(ctx CommandContext) error {
		var text string
		b.withRand(func(rng *rand.Rand) {
			text = modules.Hug(rng)
		})
		return ctx.Responder.SendText(ctx.Msg.ChatID, text)
	})
}

func (b *Bot) handleStats(ctx CommandContext) error {
	count, err := b.Store.CountQuotes(ctx.Msg.ChatID)
	if err != nil {
		return err
	}
	authors, err := b.Store.DistinctQuoteAuthors(ctx.Msg.ChatID)
	if err != nil {
		return err
	}
	return ctx.Responder.SendText(ctx.Msg.ChatID,
		fmt.Sprintf("📊 %d quotes saved from %d people in this chat", count, len(authors)))
}
