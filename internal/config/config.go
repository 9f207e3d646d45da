// internal/config/config.go
// Loader konfigurasi dari environment variables

package config

import (
	"fmt"
	"log"
	"os"
)

// BuildVersion diisi saat build via ldflags.
var BuildVersion = "dev"

type Config struct {
	AppName   string
	AppEnv    string
	AppPort   string
	LogLevel  string
	LogFormat string

	Forecast struct {
		DefaultPoints int     // jumlah titik default untuk run_forecast
		MaxPoints     int     // batas atas titik per request
		MaxYears      float64 // batas horizon yang boleh diminta via API
	}

	LLM struct {
		Provider string // default: openai
		APIKey   string
		APIBase  string
		Model    string
	}
}

func Load() *Config {
	c := &Config{}
	c.AppName = getEnv("APP_NAME", "dca-oilgas")
	c.AppEnv = getEnv("APP_ENV", "development")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.LogLevel = getEnv("LOG_LEVEL", "debug")
	c.LogFormat = getEnv("LOG_FORMAT", "json")

	c.Forecast.DefaultPoints = getEnvInt("FORECAST_DEFAULT_POINTS", 121)
	c.Forecast.MaxPoints = getEnvInt("FORECAST_MAX_POINTS", 20000)
	c.Forecast.MaxYears = getEnvFloat("FORECAST_MAX_YEARS", 100)

	// LLM / OpenAI (opsional, hanya untuk explain_forecast)
	c.LLM.Provider = getEnv("LLM_PROVIDER", "openai")
	c.LLM.APIKey = getEnv("OPENAI_API_KEY", "")
	c.LLM.APIBase = getEnv("OPENAI_API_BASE", "https://api.openai.com/v1")
	c.LLM.Model = getEnv("OPENAI_MODEL", "gpt-4o-mini")

	if c.LLM.APIKey == "" {
		log.Println("[WARN] OPENAI_API_KEY is not set, explain_forecast will use the deterministic fallback")
	}

	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		var f float64
		_, err := fmt.Sscanf(v, "%g", &f)
		if err == nil {
			return f
		}
	}
	return def
}
