package app

import (
	"time"

	"github.com/fundsinvestors/backend/internal/platform/envutil"
)

// Config is built once at startup and passed through the wiring. Nothing in
// the process reads configuration from ambient global state after this.
type Config struct {
	JWTSecretKey   string
	JWTIssuer      string
	JWTAudience    string
	AccessTokenTTL time.Duration
	HTTPAddr       string
}

// LoadConfig fails fast when the JWT signing key is absent; everything else
// has a development default.
func LoadConfig() (Config, error) {
	jwtSecretKey, err := envutil.Require("JWT_SECRET_KEY")
	if err != nil {
		return Config{}, err
	}
	accessTokenTTLSeconds := envutil.Int("ACCESS_TOKEN_TTL", 3600)
	return Config{
		JWTSecretKey:   jwtSecretKey,
		JWTIssuer:      envutil.Str("JWT_ISSUER", ""),
		JWTAudience:    envutil.Str("JWT_AUDIENCE", ""),
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		HTTPAddr:       envutil.Str("HTTP_ADDR", ":8080"),
	}, nil
}
