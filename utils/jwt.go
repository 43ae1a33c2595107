package utils

import (
	"log"
	"os"
)

// JWTSecretKey signs every issued token. Tokens carry no expiry, so
// rotating this secret is the only way to invalidate them.
var JWTSecretKey string

func InitJWT() {
	// Tests run without a .env file; give them a deterministic secret.
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}
}
