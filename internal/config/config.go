package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// DatabaseConfig holds the relational database connection settings.
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	Synchronize bool // run AutoMigrate on startup
	Logging     bool // log every query
}

// Config is the full environment-driven configuration of the application.
type Config struct {
	AppPort      string
	Env          string
	Database     DatabaseConfig
	JWTSecret    string
	JWTExpiresIn time.Duration
	BcryptCost   int
	RabbitMQURL  string
}

// Load reads configuration from environment variables with sensible
// defaults for local development. An empty RABBITMQ_URL disables event
// publishing.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USERNAME", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_DATABASE", "todoapp")
	viper.SetDefault("DB_SYNCHRONIZE", true)
	viper.SetDefault("DB_LOGGING", false)
	viper.SetDefault("JWT_SECRET", "change_me_in_production")
	viper.SetDefault("JWT_EXPIRES_IN", "24h")
	viper.SetDefault("JWT_SALT_ROUNDS", bcrypt.DefaultCost)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return &Config{
		AppPort: viper.GetString("APP_PORT"),
		Env:     viper.GetString("APP_ENV"),
		Database: DatabaseConfig{
			Driver:      viper.GetString("DB_DRIVER"),
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			Username:    viper.GetString("DB_USERNAME"),
			Password:    viper.GetString("DB_PASSWORD"),
			Database:    viper.GetString("DB_DATABASE"),
			Synchronize: viper.GetBool("DB_SYNCHRONIZE"),
			Logging:     viper.GetBool("DB_LOGGING"),
		},
		JWTSecret:    viper.GetString("JWT_SECRET"),
		JWTExpiresIn: viper.GetDuration("JWT_EXPIRES_IN"),
		BcryptCost:   viper.GetInt("JWT_SALT_ROUNDS"),
		RabbitMQURL:  viper.GetString("RABBITMQ_URL"),
	}
}

// DSN builds the connection string for the configured driver. For sqlite
// the database name is the DSN itself (a file path or ":memory:" URI).
func (c DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.Database
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.Username, c.Password, c.Database)
}
