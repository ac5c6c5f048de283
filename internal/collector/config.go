package collector

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config captures every configuration knob that influences a collection run.
// All values originate from Viper so the collector can be configured via
// files, env vars, or CLI flags.
type Config struct {
	Query          string
	MaxPages       int
	Delay          time.Duration
	RequestTimeout time.Duration
	UserAgent      string
	OutputPath     string
	StoreSlugs     []string
}

// LoadConfig constructs a Config by reading from Viper.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		Query:          v.GetString("collector.query"),
		MaxPages:       v.GetInt("collector.max_pages"),
		Delay:          v.GetDuration("collector.delay"),
		RequestTimeout: v.GetDuration("http.request_timeout"),
		UserAgent:      v.GetString("http.user_agent"),
		OutputPath:     v.GetString("output.path"),
		StoreSlugs:     v.GetStringSlice("collector.stores"),
	}
	return cfg, cfg.Validate()
}

// Validate checks for obviously bad configuration combinations.
func (c Config) Validate() error {
	if c.Query == "" {
		return fmt.Errorf("collector.query must be set")
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("collector.max_pages must be > 0")
	}
	if c.Delay < 0 {
		return fmt.Errorf("collector.delay must be >= 0")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("http.request_timeout must be > 0")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("http.user_agent must be set")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output.path must be set")
	}
	return nil
}
