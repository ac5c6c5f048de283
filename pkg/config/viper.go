// Package config is responsible for initializing the application's
// configuration. It uses the Viper library to read settings from a config
// file, environment variables, and command-line flags, providing a unified
// configuration system.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// InitConfig initializes the application's configuration using Viper.
// It sets up default values, defines configuration search paths, and enables
// reading from environment variables. This function is designed to be called
// once at application startup. An explicit cfgFile takes precedence over the
// search paths.
func InitConfig(cfgFile string) {
	// --- Set Search Paths ---
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")               // Current working directory
		viper.AddConfigPath("/etc/econodeal/") // System-wide configuration
		viper.AddConfigPath("$HOME/.econodeal")
	}

	// --- Set Defaults ---
	viper.SetDefault("collector.query", "clearance")
	viper.SetDefault("collector.max_pages", 2)
	viper.SetDefault("collector.delay", "1.5s")
	viper.SetDefault("collector.stores", []string{})
	viper.SetDefault("http.request_timeout", "20s")
	viper.SetDefault("http.user_agent", "Mozilla/5.0 (X11; Linux x86_64) EconodealBot/1.0")
	viper.SetDefault("output.path", "data/liquidations.json")
	viper.SetDefault("metrics.addr", "")
	viper.SetDefault("logging.development", true)
	viper.SetDefault("logging.level", "info")

	// --- Environment Variables ---
	viper.SetEnvPrefix("ECONO") // e.g., ECONO_COLLECTOR_MAX_PAGES=5
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// --- Read Config File ---
	// A missing config file is fine; defaults and env vars carry the run.
	_ = viper.ReadInConfig()
}
