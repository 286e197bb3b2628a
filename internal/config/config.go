package config

import (
	"os"
	"strconv"
)

type Config struct {
	Env          string
	HTTPPort     string
	PartnersFile string
	DatabaseURL  string
	JWTSecret    string
	JWTIssuer    string
	OpsUser      string
	OpsPassword  string
	OpsPassHash  string
	RateRPS      int
}

func Load() Config {
	cfg := Config{
		Env:          get("APP_ENV", "dev"),
		HTTPPort:     get("HTTP_PORT", "8080"),
		PartnersFile: get("PARTNERS_FILE", ""),
		DatabaseURL:  get("DATABASE_URL", ""),
		JWTSecret:    get("JWT_SECRET", "changeme-secret"),
		JWTIssuer:    get("JWT_ISSUER", "partner-gateway"),
		OpsUser:      get("OPS_USER", "ops"),
		OpsPassword:  get("OPS_PASSWORD", "changeme"),
		OpsPassHash:  get("OPS_PASSWORD_HASH", ""),
		RateRPS:      getInt("RATE_RPS", 100),
	}
	return cfg
}

func get(key, def string) string { v := os.Getenv(key); if v == "" { return def }; return v }

func getInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}
