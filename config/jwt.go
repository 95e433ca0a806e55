package config

import (
	"os"
	"strconv"
	"time"
)

// JWTSecret signs and verifies bearer tokens. The fallback only exists so a
// bare dev checkout boots; set JWT_SECRET in any real deployment.
var JWTSecret []byte

// JWTExpiration is the token lifetime, overridable in hours via
// JWT_EXPIRATION_HOURS.
var JWTExpiration = 24 * time.Hour

func init() {
	JWTSecret = []byte(envOr("JWT_SECRET", "picboard-dev-secret"))

	if hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS")); err == nil && hours > 0 {
		JWTExpiration = time.Duration(hours) * time.Hour
	}
}
