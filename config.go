package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"immutabot/core"
)

type Config struct {
	Bot core.BotConfig `toml:"bot"`
}

// LoadConfig reads the TOML config. A missing file is fine: every field
// has a default. Secrets (bot token, admin id) come from the environment,
// never from this file.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		Bot: core.BotConfig{
			Name:     "ImmutableBot",
			DBPath:   "data/quotes.db",
			Timezone: "Europe/Paris",
		},
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	err = toml.Unmarshal(data, config)
	return config, err
}
