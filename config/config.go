package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all application configurations.
type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Driver   string `mapstructure:"driver"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
	} `mapstructure:"kafka"`
	MercadoPago struct {
		AccessToken string `mapstructure:"access_token"`
	} `mapstructure:"mercadopago"`
	Cognito struct {
		Region     string `mapstructure:"region"`
		UserPoolID string `mapstructure:"user_pool_id"`
	} `mapstructure:"cognito"`
}

// LoadConfig reads configuration from config.yml, falling back to
// defaults and environment variables for credentials.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "3000")
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "127.0.0.1")
	viper.SetDefault("database.port", "3306")
	viper.SetDefault("database.user", "root")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "selforder_db")
	viper.SetDefault("kafka.brokers", []string{"127.0.0.1:9092"})
	viper.SetDefault("kafka.topic", "order-events")
	viper.SetDefault("cognito.region", "us-east-1")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("Config file not found, using default values.")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Credentials come from the environment when not set in the file.
	if cfg.Database.Password == "" {
		cfg.Database.Password = os.Getenv("DB_PASSWORD")
	}
	if cfg.MercadoPago.AccessToken == "" {
		cfg.MercadoPago.AccessToken = os.Getenv("MP_ACCESS_TOKEN")
	}
	if cfg.Cognito.UserPoolID == "" {
		cfg.Cognito.UserPoolID = os.Getenv("COGNITO_USER_POOL_ID")
	}

	return &cfg, nil
}
