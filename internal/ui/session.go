package ui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/best-life-api/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrSessionNotFound is returned for unknown or expired session ids
var ErrSessionNotFound = errors.New("session not found")

// Session is the per-browser login state
type Session struct {
	ID            string `json:"id"`
	PersonaKey    string `json:"persona_key,omitempty"`
	Role          string `json:"role,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	Username      string `json:"username,omitempty"`
	UserID        *int64 `json:"user_id,omitempty"`
	Authenticated bool   `json:"authenticated"`

	stored bool
}

// Store persists sessions by id
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// NewStore builds the store selected by cfg.Session.Backend
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Store, error) {
	switch cfg.Session.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Using Redis session store")
		return NewRedisStore(client, cfg.Redis.Prefix, cfg.Session.TTL), nil
	case "memory", "":
		log.Info().Msg("Using in-memory session store")
		return NewMemoryStore(cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process; expired entries are dropped on read
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a MemoryStore with the given TTL
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !m.now().Before(entry.expiresAt) {
		delete(m.entries, id)
		return nil, ErrSessionNotFound
	}
	s := entry.session
	s.stored = true
	return &s, nil
}

func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[s.ID] = memoryEntry{session: *s, expiresAt: m.now().Add(m.ttl)}
	s.stored = true
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, id)
	return nil
}

// Len returns the number of entries, expired ones included
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// RedisStore keeps sessions as JSON values with a TTL
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore; keys are prefix + session id
func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	s.stored = true
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.stored = true
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

// Close closes the underlying client
func (r *RedisStore) Close() error {
	return r.client.Close()
}
