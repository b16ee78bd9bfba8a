package core

// Fixed user-facing replies. Handlers send these verbatim.
const (
	msgNotAuthorized   = "❌ This chat is not authorized to talk to me (╭ರ_•́)"
	msgAdminOnly       = "❌ This command can only be used by the bot admin ᕦ(ò_óˇ)ᕤ"
	msgReplyNeeded     = "⚠️ Please reply to a message with /quote to save it ꉂ(˵˃ ᗜ ˂˵)"
	msgTextOnly        = "⚠️ Can only save text messages (ᵕ—ᴗ—)"
	msgQuoteSaved      = "✅ Quote saved from %s!"
	msgQuoteFailed     = "❌ Failed to save quote (⊙ _ ⊙ )"
	msgNeedMorePlayers = "⚠️ Need at least 2 people with saved quotes to play! ٩( ᐖ )人( ᐛ )و"
	msgNoQuotes        = "❌ No quotes found in database"
	msgAlreadyAuth     = "⚠️ This chat is already authorized (っ º - º ς)"
	msgAuthorized      = "✅ Chat authorized! ImmutableBot is now your buddy ദ്ദി ˉ͈̀꒳ˉ͈́ )✧"
	msgNotCurrentAuth  = "⚠️ This chat is not currently authorized (  •̀ω  •́  )"
	msgDeauthorized    = "⛔ Chat de-authorized! ImmutableBot will no longer respond here (っ◞‸◟ c)"
	msgCommandFailed   = "⚠️ Something went wrong while handling that command"

	helpText = "Commands:\n" +
		"/help - Display help message\n" +
		"/quote - Save a quote (reply to a message)\n" +
		"/guesswho - Create a 'guess who said this' poll\n" +
		"/hug - Send a group hug to everyone!\n" +
		"/stats - Show quote stats for this chat\n" +
		"/authorize - Admin: Authorize this chat for bot use\n" +
		"/deauthorize - Admin: Deauthorize this chat"
)
