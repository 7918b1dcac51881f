package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/optivision/optivision/internal/redisx"
)

// RedisPersister keeps the blob under a single Redis key with no TTL.
type RedisPersister struct {
	RDB *redis.Client
}

func (p *RedisPersister) key() string {
	return fmt.Sprintf(redisx.KeySnapshot, SnapshotName)
}

func (p *RedisPersister) Load(ctx context.Context) (Snapshot, bool, error) {
	b, err := p.RDB.Get(ctx, p.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("redis snapshot get: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, true, nil
}

func (p *RedisPersister) Save(ctx context.Context, snap Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := p.RDB.Set(ctx, p.key(), b, 0).Err(); err != nil {
		return fmt.Errorf("redis snapshot set: %w", err)
	}
	return nil
}
