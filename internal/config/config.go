package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultPort        = "8080"
	defaultLogLevel    = "info"
	defaultChartEngine = "apexcharts"
	defaultSessionTTL  = 30 * time.Minute
	defaultCORSOrigins = "http://localhost:3000"
)

type Config struct {
	Port        string
	LogLevel    string
	ChartEngine string
	SessionTTL  time.Duration
	CORSOrigins []string
}

// New reads the configuration from environment variables.
func New() *Config {
	return load(viper.New())
}

func load(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("LOGLEVEL", defaultLogLevel)
	v.SetDefault("CHARTENGINE", defaultChartEngine)
	v.SetDefault("SESSIONTTL", defaultSessionTTL)
	v.SetDefault("CORSORIGINS", defaultCORSOrigins)

	ttl := v.GetDuration("SESSIONTTL")
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &Config{
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOGLEVEL"),
		ChartEngine: strings.ToLower(strings.TrimSpace(v.GetString("CHARTENGINE"))),
		SessionTTL:  ttl,
		CORSOrigins: splitList(v.GetString("CORSORIGINS")),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
