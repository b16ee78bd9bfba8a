package main

import (
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"immutabot/core"
	"immutabot/db"
	"immutabot/platforms/telegram"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	config, err := LoadConfig("config.toml")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	adminID, err := parseAdminID(os.Getenv("ADMIN_ID"))
	if err != nil {
		log.Fatal().Err(err).Msg("ADMIN_ID must be set to the bot owner's Telegram user id")
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal().Msg("TELEGRAM_BOT_TOKEN env variable not set")
	}

	log.Info().Str("name", config.Bot.Name).Msg("starting immutabot")

	store, err := db.Open(config.Bot.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", config.Bot.DBPath).Msg("failed to open database")
	}
	defer store.Close()

	if err := store.CreateSchema(); err != nil {
		log.Fatal().Err(err).Msg("failed to create database tables")
	}

	// timestamp display zone; never fatal, UTC is always a valid fallback
	loc, err := time.LoadLocation(config.Bot.Timezone)
	if err != nil {
		log.Error().Err(err).Str("timezone", config.Bot.Timezone).Msg("failed to resolve timezone, using UTC")
		loc = time.UTC
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram auth failed")
	}
	log.Info().Str("username", api.Self.UserName).Msg("logged in")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	bot := core.NewBot(store, &config.Bot, adminID, rng, loc, log)

	adapter := telegram.NewAdapter(api, bot, log)

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		adapter.Stop()
	}()

	if err := adapter.Start(); err != nil {
		log.Fatal().Err(err).Msg("bot failed")
	}

	log.Info().Msg("bot shutdown complete")
}

func parseAdminID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
