package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	ListenAddr  string `mapstructure:"LISTEN_ADDR"`
	IconDir     string `mapstructure:"ICON_DIR"`
	BuildDir    string `mapstructure:"BUILD_DIR"`
	ScratchDir  string `mapstructure:"SCRATCH_DIR"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("LISTEN_ADDR", ":8080")
	viper.SetDefault("ICON_DIR", "uploads/gameIcons")
	viper.SetDefault("BUILD_DIR", "uploads/gameBuilds")
	viper.SetDefault("SCRATCH_DIR", "uploads/scratch")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
