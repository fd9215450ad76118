package config

import (
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// envConfig mirrors Config with envdecode tags. All variables are optional at
// this stage; hard requirements are enforced later by Config.Validate.
type envConfig struct {
	EndpointAddr          string `env:"ADDR"`
	DatabaseDSN           string `env:"DATABASE_URL"`
	SecretKey             string `env:"JWT_SECRET"`
	TokenValidityDuration string `env:"TOKEN_VALIDITY"`
}

// parseEnv overlays configuration from the process environment. A local .env
// file is loaded first when present, matching how the platform is run in
// development; missing files are not an error.
func parseEnv(config *Config) {

	_ = godotenv.Load()

	c := &envConfig{}
	if err := envdecode.Decode(c); err != nil {
		// envdecode reports an error when not a single tagged field is
		// set; an empty environment is fine here.
		return
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration != "" {
		if d, err := time.ParseDuration(c.TokenValidityDuration); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
