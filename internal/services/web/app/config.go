package app

import (
	"time"

	"github.com/arenahq/arena/internal/services/web/modules/shop"
)

// Session store backends.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config captures the web server settings.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
	APITimeout time.Duration
	// SessionStore selects StoreSQLite or StoreRedis.
	SessionStore        string
	SessionDBPath       string
	RedisAddr           string
	SessionTTL          time.Duration
	TrustForwardedProto bool
	Shop                shop.Config
	PlaceholderStats    bool
}
