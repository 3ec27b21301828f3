package main

import (
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/npc-generator/internal/errors"
)

// envConfig holds the environment defaults of the CLI flags
type envConfig struct {
	Database  string `env:"NPCGEN_DATABASE" envDefault:"./database"`
	Config    string `env:"NPCGEN_CONFIG" envDefault:"./config.txt"`
	SavePath  string `env:"NPCGEN_SAVE_PATH" envDefault:"./save.txt"`
	RedisAddr string `env:"NPCGEN_REDIS_ADDR"`
	RedisDB   int    `env:"NPCGEN_REDIS_DB" envDefault:"0"`
	LogLevel  string `env:"NPCGEN_LOG_LEVEL" envDefault:"info"`
	Seed      uint64 `env:"NPCGEN_SEED" envDefault:"0"`
}

// loadEnv reads the CLI defaults from the environment
func loadEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return cfg, nil
}
