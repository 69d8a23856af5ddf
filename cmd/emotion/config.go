package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/database"
)

type Config struct {
	// EMOTION_ADDR is the analyzerd gRPC address used by the remote commands.
	Addr string `envconfig:"ADDR" default:"localhost:50051"`
	// EMOTION_DB is the badger directory read by inspect and blacklist.
	DB string `envconfig:"DB"`
	// EMOTION_TOKEN is sent as a bearer token to protected methods.
	Token string `envconfig:"TOKEN"`
	// EMOTION_AUTH_SECRET signs tokens issued by the token command.
	AuthSecret string `envconfig:"AUTH_SECRET"`
	// EMOTION_COLOURS enables colorized severities.
	Colours bool `envconfig:"COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("emotion", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.DB == "" {
		cfg.DB = database.DefaultPath
	}
	return cfg, nil
}
