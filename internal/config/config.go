/**
 * @description
 * Configuration management for the wallet-service. Viper reads an optional
 * .env file and binds environment variables to the Config struct, with
 * defaults matching the sandbox wallet contract (50,000 PKR seed balance,
 * 2-3 second simulated confirmation delay, 95% confirmation success rate).
 *
 * @dependencies
 * - github.com/spf13/viper: Application configuration.
 */

package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the wallet-service,
// loaded from environment variables.
type Config struct {
	ServerPort           string  `mapstructure:"SERVER_PORT"`
	DatabaseURL          string  `mapstructure:"DATABASE_URL"`
	RedisURL             string  `mapstructure:"REDIS_URL"`
	RedisRateLimitPrefix string  `mapstructure:"REDIS_RATE_LIMIT_PREFIX"`
	RabbitMQURL          string  `mapstructure:"RABBITMQ_URL"`
	AuthJWKSURL          string  `mapstructure:"AUTH_JWKS_URL"`
	BankGatewayURL       string  `mapstructure:"BANK_GATEWAY_URL"`
	BankGatewayAPIKey    string  `mapstructure:"BANK_GATEWAY_API_KEY"`
	SeedBalance          float64 `mapstructure:"SEED_BALANCE"`

	ConfirmationMinDelayMs  int     `mapstructure:"CONFIRMATION_MIN_DELAY_MS"`
	ConfirmationMaxDelayMs  int     `mapstructure:"CONFIRMATION_MAX_DELAY_MS"`
	ConfirmationSuccessRate float64 `mapstructure:"CONFIRMATION_SUCCESS_RATE"`

	WalletOpRateLimit          int `mapstructure:"WALLET_OP_RATE_LIMIT_PER_WINDOW"`
	WalletOpRateLimitWindowMin int `mapstructure:"WALLET_OP_RATE_LIMIT_WINDOW_MINUTES"`
}

// LoadConfig reads configuration from environment variables, with an
// optional .env file at the given path.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_RATE_LIMIT_PREFIX", "rentreturn:rate_limit")
	viper.SetDefault("SEED_BALANCE", 50000.0)
	viper.SetDefault("CONFIRMATION_MIN_DELAY_MS", 2000)
	viper.SetDefault("CONFIRMATION_MAX_DELAY_MS", 3000)
	viper.SetDefault("CONFIRMATION_SUCCESS_RATE", 0.95)
	viper.SetDefault("WALLET_OP_RATE_LIMIT_PER_WINDOW", 20)
	viper.SetDefault("WALLET_OP_RATE_LIMIT_WINDOW_MINUTES", 15)

	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("REDIS_URL", "REDIS_URL", "WALLET_REDIS_URL")
	_ = viper.BindEnv("REDIS_RATE_LIMIT_PREFIX")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("AUTH_JWKS_URL")
	_ = viper.BindEnv("BANK_GATEWAY_URL")
	_ = viper.BindEnv("BANK_GATEWAY_API_KEY")
	_ = viper.BindEnv("SEED_BALANCE")
	_ = viper.BindEnv("CONFIRMATION_MIN_DELAY_MS")
	_ = viper.BindEnv("CONFIRMATION_MAX_DELAY_MS")
	_ = viper.BindEnv("CONFIRMATION_SUCCESS_RATE")
	_ = viper.BindEnv("WALLET_OP_RATE_LIMIT_PER_WINDOW")
	_ = viper.BindEnv("WALLET_OP_RATE_LIMIT_WINDOW_MINUTES")

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}
	config.RedisURL = strings.TrimSpace(config.RedisURL)
	config.RedisRateLimitPrefix = strings.TrimSpace(config.RedisRateLimitPrefix)
	if config.RedisRateLimitPrefix == "" {
		config.RedisRateLimitPrefix = "rentreturn:rate_limit"
	}

	if config.SeedBalance < 0 {
		log.Printf("level=warn component=config msg=\"negative seed balance configured; using default\" seed_balance=%f", config.SeedBalance)
		config.SeedBalance = 50000
	}
	if config.ConfirmationMinDelayMs < 0 {
		config.ConfirmationMinDelayMs = 0
	}
	if config.ConfirmationMaxDelayMs < config.ConfirmationMinDelayMs {
		log.Printf("level=warn component=config msg=\"confirmation max delay below min; clamping\" min_ms=%d max_ms=%d",
			config.ConfirmationMinDelayMs, config.ConfirmationMaxDelayMs)
		config.ConfirmationMaxDelayMs = config.ConfirmationMinDelayMs
	}
	if config.ConfirmationSuccessRate < 0 || config.ConfirmationSuccessRate > 1 {
		log.Printf("level=warn component=config msg=\"confirmation success rate out of range; using default\" rate=%f", config.ConfirmationSuccessRate)
		config.ConfirmationSuccessRate = 0.95
	}
	if config.WalletOpRateLimit < 0 {
		config.WalletOpRateLimit = 0 // zero disables rate limiting
	}
	if config.WalletOpRateLimitWindowMin <= 0 {
		config.WalletOpRateLimitWindowMin = 15
	}

	return
}
