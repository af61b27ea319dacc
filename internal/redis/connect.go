package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Addr     string
	Password string
	// Attempts is the number of pings tried before giving up.
	Attempts int
	// Backoff is doubled after every failed ping.
	Backoff time.Duration
}

// Connect pings Redis until it answers or the attempts run out.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	if opts.Attempts <= 0 {
		opts.Attempts = 1
	}
	if opts.Backoff <= 0 {
		opts.Backoff = time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	var err error
	backoff := opts.Backoff
	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		err = client.Ping(ctx).Err()
		if err == nil {
			log.Info().Str("addr", opts.Addr).Int("attempts_needed", attempt).Msg("Redis connected")
			return client, nil
		}

		log.Warn().Err(err).Int("attempt", attempt).Int("attempts", opts.Attempts).Msg("Redis ping failed")
		if attempt == opts.Attempts {
			break
		}

		select {
		case <-ctx.Done():
			client.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	client.Close()
	return nil, fmt.Errorf("failed to connect to Redis at %s after %d attempts: %w", opts.Addr, opts.Attempts, err)
}
