package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Persister is the serialization boundary for session snapshots.
type Persister interface {
	Load(ctx context.Context, session string) (Snapshot, bool, error)
	Save(ctx context.Context, session string, snap Snapshot) error
	Delete(ctx context.Context, session string) error
}

// RedisPersister keeps each session snapshot under one namespaced key.
type RedisPersister struct {
	Conn *redis.Client
}

func snapshotKey(session string) string {
	return Namespace + ":" + session
}

func (p *RedisPersister) Load(ctx context.Context, session string) (Snapshot, bool, error) {
	data, err := p.Conn.Get(ctx, snapshotKey(session)).Bytes()
	if err == redis.Nil {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (p *RedisPersister) Save(ctx context.Context, session string, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return p.Conn.Set(ctx, snapshotKey(session), data, 0).Err()
}

func (p *RedisPersister) Delete(ctx context.Context, session string) error {
	return p.Conn.Del(ctx, snapshotKey(session)).Err()
}
