package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("BLOGHUB_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("BLOGHUB_JWT_ISSUER")
	if issuer == "" {
		issuer = "bloghub"
	}

	duration := 24 * time.Hour
	if ttl := os.Getenv("BLOGHUB_JWT_TTL_HOURS"); ttl != "" {
		// simple parse: hours; if parse fails, fallback to 24h
		if h, err := strconv.Atoi(ttl); err == nil && h > 0 {
			duration = time.Duration(h) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: duration,
	}
}

type GrpcConfig struct {
	Addr string
}

func LoadGrpcConfig() GrpcConfig {
	addr := os.Getenv("BLOGHUB_GRPC_ADDR")
	if addr == "" {
		addr = ":9090"
	}
	return GrpcConfig{Addr: addr}
}
