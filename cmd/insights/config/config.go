// Package config builds component configurations from viper-managed
// settings: defaults, optional config file, INSIGHTS_* environment
// variables, and command-line flags, in increasing precedence.
package config

import (
	"github.com/dimityrivanov/transaction-insights/internal/server"
	"github.com/dimityrivanov/transaction-insights/pkg/logger"

	"github.com/spf13/viper"
)

// SetDefaults registers the default values for every setting.
func SetDefaults() {
	viper.SetDefault("log.level", string(logger.InfoLevel))
	viper.SetDefault("log.format", string(logger.TextFormat))
	viper.SetDefault("server.listen", ":5000")
	viper.SetDefault("server.cors_origins", "*")
	viper.SetDefault("server.body_limit", 10*1024*1024)
}

// BuildLoggerConfig creates the logger configuration from current settings.
func BuildLoggerConfig() *logger.Config {
	return &logger.Config{
		Level:  logger.Level(viper.GetString("log.level")),
		Format: logger.Format(viper.GetString("log.format")),
	}
}

// BuildServerConfig creates the HTTP server configuration from current
// settings.
func BuildServerConfig() *server.Config {
	return &server.Config{
		Listen:      viper.GetString("server.listen"),
		CORSOrigins: viper.GetString("server.cors_origins"),
		BodyLimit:   viper.GetInt("server.body_limit"),
	}
}
