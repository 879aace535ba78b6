package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "arcoiris:cart:"

// RedisPersister stores the cart under a fixed per-session key so it survives
// page reloads until explicitly cleared.
type RedisPersister struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

func NewRedisPersister(client *redis.Client, sessionID string, ttl time.Duration) *RedisPersister {
	return &RedisPersister{client: client, sessionID: sessionID, ttl: ttl}
}

func (p *RedisPersister) key() string {
	return cartKeyPrefix + p.sessionID
}

func (p *RedisPersister) Load() (State, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := p.client.Get(ctx, p.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, nil
	}
	if err != nil {
		return State{}, err
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return State{}, err
	}
	return st, nil
}

func (p *RedisPersister) Save(s State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return p.client.Set(ctx, p.key(), raw, p.ttl).Err()
}
