package core

// Both admin handlers read current state before writing so that a repeat
// call gets an accurate "already"/"not currently" reply instead of a
// uniqueness error. The read-then-write is not atomic against a concurrent
// duplicate call; that race is accepted.

func (b *Bot) handleAuthorize(ctx CommandContext) error {
	if !b.checkAdmin(ctx) {
		return nil
	}

	chatID := ctx.Msg.ChatID
	if b.Store.IsChatAuthorized(chatID) {
		return ctx.Responder.SendText(chatID, msgAlreadyAuth)
	}

	if err := b.Store.AuthorizeChat(chatID); err != nil {
		return err
	}
	return ctx.Responder.SendText(chatID, msgAuthorized)
}

func (b *Bot) handleDeauthorize(ctx CommandContext) error {
	if !b.checkAdmin(ctx) {
		return nil
	}

	chatID := ctx.Msg.ChatID
	if !b.Store.IsChatAuthorized(chatID) {
		return ctx.Responder.SendText(chatID, msgNotCurrentAuth)
	}

	if err := b.Store.DeauthorizeChat(chatID); err != nil {
		return err
	}
	return ctx.Responder.SendText(chatID, msgDeauthorized)
}
