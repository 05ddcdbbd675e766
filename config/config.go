package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Redis     Redis
	JWT       JWT
	Interview Interview
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Redis struct {
	Addr     string
	Password string
}

type JWT struct {
	Secret      string
	ExpiryHours int
}

type Interview struct {
	// AcceptancePolicy decides how the global status reacts to teacher
	// decisions: "first_accept" or "unanimous".
	AcceptancePolicy string
	// OutboxReplaySpec is the cron spec for re-projecting lifecycle events
	// into teacher inboxes.
	OutboxReplaySpec string
}

const (
	PolicyFirstAccept = "first_accept"
	PolicyUnanimous   = "unanimous"
)

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("ACCEPTANCE_POLICY", PolicyFirstAccept)
	viper.SetDefault("OUTBOX_REPLAY_SPEC", "@every 30s")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.ExpiryHours = viper.GetInt("JWT_EXPIRY_HOURS")

	config.Interview.AcceptancePolicy = viper.GetString("ACCEPTANCE_POLICY")
	config.Interview.OutboxReplaySpec = viper.GetString("OUTBOX_REPLAY_SPEC")

	if config.Interview.AcceptancePolicy != PolicyFirstAccept &&
		config.Interview.AcceptancePolicy != PolicyUnanimous {
		log.Warn().Str("policy", config.Interview.AcceptancePolicy).Msg("Unknown acceptance policy, falling back to first_accept")
		config.Interview.AcceptancePolicy = PolicyFirstAccept
	}

	log.Info().Str("port", config.Server.Port).Str("policy", config.Interview.AcceptancePolicy).Msg("Config loaded")
	return &config, nil
}
