package engine

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Session state uses 2 tiers: L1 in-memory + optional L2 Redis.
// L1 is fast but lost on restart. L2 lets several server replicas share sessions.
// Entries expire after the TTL of their last save.
var sessions *sessionStore

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("session not found or expired")

const sessionKeyPrefix = "tutor:sess:"

var (
	sessionHits   atomic.Int64
	sessionMisses atomic.Int64
)

type sessionStore struct {
	l1              sync.Map      // id → *sessionEntry
	rdb             *redis.Client // nil if Redis unavailable
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	done            chan struct{}
}

type sessionEntry struct {
	data      []byte
	expiresAt time.Time
}

// InitSessions sets up the session store. Call after Init().
// redisURL can be empty to disable L2. Re-initialising stops the previous
// store's cleanup loop.
func InitSessions(redisURL string, ttl time.Duration, maxEntries int, cleanupInterval time.Duration) {
	if ttl <= 0 {
		ttl = time.Hour
	}
	s := &sessionStore{ttl: ttl, maxEntries: maxEntries, cleanupInterval: cleanupInterval, done: make(chan struct{})}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			slog.Warn("sessions: invalid redis URL, L2 disabled", slog.Any("error", err))
		} else {
			rdb := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("sessions: redis unreachable, L2 disabled", slog.Any("error", err))
				_ = rdb.Close()
			} else {
				s.rdb = rdb
				slog.Info("sessions: L2 redis connected", slog.String("addr", opts.Addr))
			}
		}
	}

	if sessions != nil {
		close(sessions.done)
	}
	sessions = s
	slog.Info("sessions: initialized", slog.Duration("ttl", ttl), slog.Bool("redis", s.rdb != nil), slog.Int("max_entries", maxEntries))

	go s.cleanupLoop()
}

// NewSessionID returns a fresh random session ID.
func NewSessionID() string {
	return uuid.NewString()
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// SessionLoad tries L1, then L2. On L2 hit, populates L1.
func SessionLoad(ctx context.Context, id string) (SessionState, bool) {
	if sessions == nil || id == "" {
		sessionMisses.Add(1)
		return SessionState{}, false
	}
	key := sessionKey(id)

	if val, ok := sessions.l1.Load(key); ok {
		entry := val.(*sessionEntry)
		if time.Now().Before(entry.expiresAt) {
			var st SessionState
			if json.Unmarshal(entry.data, &st) == nil {
				sessionHits.Add(1)
				return st, true
			}
		}
		sessions.l1.Delete(key) // expired or corrupt
	}

	if sessions.rdb != nil {
		data, err := sessions.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var st SessionState
			if json.Unmarshal(data, &st) == nil {
				slog.Debug("sessions: L2 hit", slog.String("id", id))
				sessionHits.Add(1)
				sessions.l1.Store(key, &sessionEntry{
					data:      data,
					expiresAt: time.Now().Add(sessions.ttl),
				})
				return st, true
			}
		} else if !errors.Is(err, redis.Nil) {
			slog.Debug("sessions: L2 get failed", slog.Any("error", err))
		}
	}

	sessionMisses.Add(1)
	return SessionState{}, false
}

// SessionSave stores the state in both tiers and restarts its TTL.
func SessionSave(ctx context.Context, st SessionState) {
	if sessions == nil || st.ID == "" {
		return
	}
	st.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(st)
	if err != nil {
		slog.Warn("sessions: marshal failed", slog.String("id", st.ID), slog.Any("error", err))
		return
	}
	key := sessionKey(st.ID)

	if _, exists := sessions.l1.Load(key); !exists {
		sessions.evictIfNeeded()
	}
	sessions.l1.Store(key, &sessionEntry{
		data:      data,
		expiresAt: time.Now().Add(sessions.ttl),
	})

	if sessions.rdb != nil {
		if err := sessions.rdb.Set(ctx, key, data, sessions.ttl).Err(); err != nil {
			slog.Debug("sessions: L2 set failed", slog.Any("error", err))
		}
	}
}

// SessionDelete drops a session from both tiers.
func SessionDelete(ctx context.Context, id string) {
	if sessions == nil || id == "" {
		return
	}
	key := sessionKey(id)
	sessions.l1.Delete(key)
	if sessions.rdb != nil {
		sessions.rdb.Del(ctx, key)
	}
}

// SessionStats returns current session hit/miss counters.
func SessionStats() (hits, misses int64) {
	return sessionHits.Load(), sessionMisses.Load()
}

// evictIfNeeded removes entries when L1 reaches maxEntries.
// Removes expired entries first, then the least recently saved ones.
func (s *sessionStore) evictIfNeeded() {
	if s.maxEntries <= 0 {
		return
	}

	count := 0
	s.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count < s.maxEntries {
		return
	}

	now := time.Now()
	s.l1.Range(func(key, val any) bool {
		if entry, ok := val.(*sessionEntry); ok && now.After(entry.expiresAt) {
			s.l1.Delete(key)
			count--
		}
		return count >= s.maxEntries
	})

	// Earlier expiry = older save (expiry = savedAt + ttl).
	for count >= s.maxEntries {
		var oldestKey any
		oldestAt := now.Add(s.ttl + time.Hour)
		s.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*sessionEntry); ok && entry.expiresAt.Before(oldestAt) {
				oldestKey = key
				oldestAt = entry.expiresAt
			}
			return true
		})
		if oldestKey == nil {
			break
		}
		s.l1.Delete(oldestKey)
		count--
	}
}

// cleanupLoop periodically removes expired L1 entries.
func (s *sessionStore) cleanupLoop() {
	interval := s.cleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.l1.Range(func(key, val any) bool {
				if entry, ok := val.(*sessionEntry); ok && now.After(entry.expiresAt) {
					s.l1.Delete(key)
				}
				return true
			})
		}
	}
}
