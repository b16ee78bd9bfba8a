package core

import (
	"fmt"
	"math/rand"

	"immutabot/modules"
)

// handleQuote saves the replied-to message as a quote. A forwarded command
// message attributes the original speaker, not the forwarder.
func (b *Bot) handleQuote(ctx CommandContext) error {
	replied := ctx.Msg.ReplyTo
	if replied == nil {
		return ctx.Responder.SendText(ctx.Msg.ChatID, msgReplyNeeded)
	}
	if replied.Text == "" {
		return ctx.Responder.SendText(ctx.Msg.ChatID, msgTextOnly)
	}

	author := replied.From
	if f := ctx.Msg.ForwardedFrom; f != nil {
		author = *f
	}

	err := b.Store.InsertQuote(ctx.Msg.ChatID, author.ID, author.Username, replied.Text, replied.Timestamp)
	if err != nil {
		b.Log.Error().Err(err).Int64("chat_id", ctx.Msg.ChatID).Msg("failed to insert quote")
		return ctx.Responder.SendText(ctx.Msg.ChatID, msgQuoteFailed)
	}

	display := modules.FormatUserDisplay(author.ID, author.Username)
	return ctx.Responder.SendText(ctx.Msg.ChatID, fmt.Sprintf(msgQuoteSaved, display))
}

// handleGuessWho builds the trivia poll: one random quote, the real author
// plus random decoy authors from the same chat.
func (b *Bot) handleGuessWho(ctx CommandContext) error {
	chatID := ctx.Msg.ChatID

	authors, err := b.Store.DistinctQuoteAuthors(chatID)
	if err != nil {
		b.Log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to load quote authors")
		authors = nil
	}
	if len(authors) < 2 {
		return ctx.Responder.SendText(chatID, msgNeedMorePlayers)
	}

	quote, err := b.Store.RandomQuote(chatID)
	if err != nil {
		b.Log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to load random quote")
		quote = nil
	}
	if quote == nil {
		return ctx.Responder.SendText(chatID, msgNoQuotes)
	}

	var poll modules.QuizPoll
	b.withRand(func(rng *rand.Rand) {
		poll = modules.BuildQuiz(quote, authors, rng, b.Loc)
	})

	return ctx.Responder.SendQuizPoll(chatID, poll)
}
