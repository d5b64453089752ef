package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Logger  LoggerConfig
	Storage StorageConfig
	Parser  ParserConfig
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	// Path to the tasks JSON file.
	Path string
}

type ParserConfig struct {
	// Timezone is an IANA name used to resolve relative dates, e.g.
	// "Asia/Ho_Chi_Minh". "Local" uses the system timezone.
	Timezone string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/todo/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/todo/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Storage.Path = viper.GetString("storage.path")
	if dataPath := viper.GetString("todo_data"); dataPath != "" {
		cfg.Storage.Path = dataPath
	}

	cfg.Parser.Timezone = viper.GetString("parser.timezone")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.path", "data/tasks.json")
	viper.SetDefault("parser.timezone", "Local")
}
