package core

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immutabot/db"
	"immutabot/modules"
)

const testAdminID int64 = 9000

type sentText struct {
	chatID int64
	text   string
}

type sentPoll struct {
	chatID int64
	poll   modules.QuizPoll
}

// fakeResponder records everything the bot sends.
type fakeResponder struct {
	texts []sentText
	polls []sentPoll
}

func (f *fakeResponder) SendText(chatID int64, text string) error {
	f.texts = append(f.texts, sentText{chatID, text})
	return nil
}

func (f *fakeResponder) SendQuizPoll(chatID int64, poll modules.QuizPoll) error {
	f.polls = append(f.polls, sentPoll{chatID, poll})
	return nil
}

func (f *fakeResponder) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.texts)
	return f.texts[len(f.texts)-1].text
}

func newTestBot(t *testing.T) (*Bot, *db.Store) {
	t.Helper()

	store, err := db.Open(filepath.Join(t.TempDir(), "quotes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.CreateSchema())

	cfg := &BotConfig{Name: "ImmutableBot", Timezone: "UTC"}
	rng := rand.New(rand.NewSource(1))
	bot := NewBot(store, cfg, testAdminID, rng, time.UTC, zerolog.Nop())
	return bot, store
}

func command(chatID, userID int64, username, text string) IncomingMessage {
	return IncomingMessage{
		ChatID:    chatID,
		From:      Author{ID: userID, Username: username},
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}

func authorize(t *testing.T, store *db.Store, chatID int64) {
	t.Helper()
	require.NoError(t, store.AuthorizeChat(chatID))
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text     string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{"/quote", "quote", nil, true},
		{"/GuessWho", "guesswho", nil, true},
		{"/quote@ImmutableBot", "quote", nil, true},
		{"/quote@immutablebot", "quote", nil, true},
		{"/quote@SomeOtherBot", "", nil, false},
		{"/hug now please", "hug", []string{"now", "please"}, true},
		{"plain text", "", nil, false},
		{"/", "", nil, false},
		{"", "", nil, false},
	}

	for _, tt := range tests {
		name, args, ok := parseCommand(tt.text, "ImmutableBot")
		assert.Equal(t, tt.wantOK, ok, tt.text)
		assert.Equal(t, tt.wantName, name, tt.text)
		if len(tt.wantArgs) > 0 {
			assert.Equal(t, tt.wantArgs, args, tt.text)
		}
	}
}

func TestUnauthorizedChatRejected(t *testing.T) {
	bot, store := newTestBot(t)
	resp := &fakeResponder{}

	bot.HandleMessage(command(1, 42, "alice", "/quote"), resp)

	assert.Equal(t, msgNotAuthorized, resp.lastText(t))

	n, err := store.CountQuotes(1)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUnknownCommandIgnored(t *testing.T) {
	bot, store := newTestBot(t)
	authorize(t, store, 1)
	resp := &fakeResponder{}

	bot.HandleMessage(command(1, 42, "alice", "/doesnotexist"), resp)

	assert.Empty(t, resp.texts)
	assert.Empty(t, resp.polls)
}

func TestHelpListsCommands(t *testing.T) {
	bot, store := newTestBot(t)
	authorize(t, store, 1)
	resp := &fakeResponder{}

	bot.HandleMessage(command(1, 42, "alice", "/help"), resp)

	help := resp.lastText(t)
	for _, cmd := range []string{"/help", "/quote", "/guesswho", "/hug", "/authorize", "/deauthorize"} {
		assert.Contains(t, help, cmd)
	}
}

func TestHugSendsReaction(t *testing.T) {
	bot, store := newTestBot(t)
	authorize(t, store, 1)
	resp := &fakeResponder{}

	bot.HandleMessage(command(1, 42, "alice", "/hug"), resp)

	assert.NotEmpty(t, resp.lastText(t))
	assert.Empty(t, resp.polls)
}

func TestStats(t *testing.T) {
	bot, store := newTestBot(t)
	authorize(t, store, 1)
	now := time.Now()
	require.NoError(t, store.InsertQuote(1, 42, "alice", "one", now))
	require.NoError(t, store.InsertQuote(1, 42, "alice", "two", now))
	require.NoError(t, store.InsertQuote(1, 555, "", "three", now))
	resp := &fakeResponder{}

	bot.HandleMessage(command(1, 42, "alice", "/stats"), resp)

	assert.Equal(t, "📊 3 quotes saved from 2 people in this chat", resp.lastText(t))
}

func TestLinkRewriteInAuthorizedChat(t *testing.T) {
	bot, store := newTestBot(t)
	authorize(t, store, 1)
	resp := &fakeResponder{}

	bot.HandleMessage(command(1, 42, "alice", "https://x.com/user/status/1"), resp)

	assert.Equal(t, "https://fxtwitter.com/user/status/1", resp.lastText(t))
}

func TestLinkRewriteSilentWhenUnauthorized(t *testing.T) {
	bot, _ := newTestBot(t)
	resp := &fakeResponder{}

	bot.HandleMessage(command(1, 42, "alice", "https://x.com/user/status/1"), resp)

	assert.Empty(t, resp.texts)
}

func TestPlainTextWithoutLinksIsSilent(t *testing.T) {
	bot, store := newTestBot(t)
	authorize(t, store, 1)
	resp := &fakeResponder{}

	bot.HandleMessage(command(1, 42, "alice", "nothing to see here"), resp)

	assert.Empty(t, resp.texts)
}
