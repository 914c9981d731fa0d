package rdx

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

// Ping verifies the connection at startup so a misconfigured Redis
// surfaces immediately instead of on the first cart mutation.
func Ping() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Conn.Ping(ctx).Err(); err != nil {
		log.Printf("Redis ping failed: %v", err)
	}
}
