package core

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"immutabot/db"
	"immutabot/modules"
)

type BotConfig struct {
	Name     string `toml:"name"`
	DBPath   string `toml:"db_path"`
	Timezone string `toml:"timezone"`
}

// Bot holds everything a handler invocation needs. It is built once at
// startup and shared by all concurrently-running handlers.
type Bot struct {
	Store    *db.Store
	Config   *BotConfig
	AdminID  int64
	Commands *CommandRegistry
	Loc      *time.Location
	Log      zerolog.Logger

	// rng is not goroutine-safe; take randMu around every use.
	rng    *rand.Rand
	randMu sync.Mutex
}

func NewBot(store *db.Store, cfg *BotConfig, adminID int64, rng *rand.Rand, loc *time.Location, log zerolog.Logger) *Bot {
	b := &Bot{
		Store:    store,
		Config:   cfg,
		AdminID:  adminID,
		Commands: NewCommandRegistry(),
		Loc:      loc,
		Log:      log,
		rng:      rng,
	}
	RegisterDefaultCommands(b)
	return b
}

// HandleMessage dispatches one inbound message: commands go through the
// authorization gate to their handler, other text goes to the link
// rewriter.
func (b *Bot) HandleMessage(msg IncomingMessage, responder Responder) {
	defer func() {
		if r := recover(); r != nil {
			b.Log.Error().Interface("panic", r).Msg("recovered in HandleMessage")
		}
	}()

	if name, args, ok := parseCommand(msg.Text, b.Config.Name); ok && b.Commands.Has(name) {
		// authorize/deauthorize must work in not-yet-authorized chats;
		// everything else needs the chat in the authorized set
		requiresAuth := name != "authorize" && name != "deauthorize"
		if requiresAuth && !b.Store.IsChatAuthorized(msg.ChatID) {
			if err := responder.SendText(msg.ChatID, msgNotAuthorized); err != nil {
				b.Log.Error().Err(err).Msg("failed to send rejection")
			}
			return
		}

		b.Commands.Execute(name, CommandContext{
			Msg:       msg,
			Responder: responder,
			Bot:       b,
			Args:      args,
		})
		return
	}

	b.handleText(msg, responder)
}

// handleText runs non-command text through the link rewriter. Silent when
// nothing matches or the chat is not authorized.
func (b *Bot) handleText(msg IncomingMessage, responder Responder) {
	if msg.Text == "" || !b.Store.IsChatAuthorized(msg.ChatID) {
		return
	}
	if rewritten, ok := modules.RewriteLinks(msg.Text); ok {
		if err := responder.SendText(msg.ChatID, rewritten); err != nil {
			b.Log.Error().Err(err).Msg("failed to send rewritten link")
		}
	}
}

// parseCommand splits "/name@bot arg..." into a lowercased name and args.
func parseCommand(text, botName string) (string, []string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", nil, false
	}
	parts := strings.Fields(text)
	name := strings.TrimPrefix(parts[0], "/")
	// strip the @botname suffix used in group chats
	if at := strings.IndexByte(name, '@'); at >= 0 {
		mention := name[at+1:]
		if !strings.EqualFold(mention, botName) {
			return "", nil, false
		}
		name = name[:at]
	}
	if name == "" {
		return "", nil, false
	}
	return strings.ToLower(name), parts[1:], true
}

// checkAdmin verifies the sender is the configured administrator and
// replies with the fixed rejection when not. A missing sender (id 0) can
// never be the admin.
func (b *Bot) checkAdmin(ctx CommandContext) bool {
	if ctx.Msg.From.ID != b.AdminID {
		if err := ctx.Responder.SendText(ctx.Msg.ChatID, msgAdminOnly); err != nil {
			b.Log.Error().Err(err).Msg("failed to send admin rejection")
		}
		return false
	}
	return true
}

// withRand runs f with the bot's random source. The source is shared by
// concurrent handlers and is not goroutine-safe on its own.
func (b *Bot) withRand(f func(rng *rand.Rand)) {
	b.randMu.Lock()
	defer b.randMu.Unlock()
	f(b.rng)
}
