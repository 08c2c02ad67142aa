package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	Port                  string `mapstructure:"PORT"`
	DatabaseURL           string `mapstructure:"DATABASE_URL"`
	RedisURL              string `mapstructure:"REDIS_URL"`
	RedisPassword         string `mapstructure:"REDIS_PASSWORD"`
	SessionSecret         string `mapstructure:"SESSION_SECRET"`
	SessionMaxAge         int    `mapstructure:"SESSION_MAX_AGE"`
	RequestTimeoutSeconds int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	GeoIPDBPath           string `mapstructure:"GEOIP_DB_PATH"`
}

func LoadConfig() (config Config, err error) {
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DATABASE_URL", "sqlite://memo.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	// No default for the secret itself beyond registering the key, so
	// AutomaticEnv can resolve it. The server generates one when empty.
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_MAX_AGE", 86400)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 10)
	viper.SetDefault("GEOIP_DB_PATH", "")

	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	if err != nil {
		log.Printf("unable to decode into struct, %v", err)
		return
	}

	return
}
