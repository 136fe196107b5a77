package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SlotLocker serializes booking attempts on one (date, time, staff) slot.
// TryAcquire must not block: a held lock is reported immediately so the
// caller can surface a retryable conflict.
type SlotLocker interface {
	TryAcquire(key string) bool
	Release(key string)
}

// MemorySlotLocker is the default locker. It is scoped to a single process;
// a multi-instance deployment needs RedisSlotLocker instead, and relies on
// the re-verify step at commit time either way.
type MemorySlotLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewMemorySlotLocker() *MemorySlotLocker {
	return &MemorySlotLocker{held: make(map[string]bool)}
}

func (l *MemorySlotLocker) TryAcquire(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return false
	}
	l.held[key] = true
	return true
}

func (l *MemorySlotLocker) Release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
}

// releaseScript deletes the lock key only when this locker still owns it,
// so an expired lock re-acquired by another instance is never released
// from here.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSlotLocker is a keyed distributed lock (SET NX PX) for deployments
// running more than one instance.
type RedisSlotLocker struct {
	client *redis.Client
	ttl    time.Duration

	mu     sync.Mutex
	tokens map[string]string
}

func NewRedisSlotLocker(client *redis.Client, ttl time.Duration) *RedisSlotLocker {
	return &RedisSlotLocker{
		client: client,
		ttl:    ttl,
		tokens: make(map[string]string),
	}
}

func (l *RedisSlotLocker) TryAcquire(key string) bool {
	token := uuid.NewString()
	ok, err := l.client.SetNX(context.Background(), "slotlock:"+key, token, l.ttl).Result()
	if err != nil || !ok {
		return false
	}
	l.mu.Lock()
	l.tokens[key] = token
	l.mu.Unlock()
	return true
}

func (l *RedisSlotLocker) Release(key string) {
	l.mu.Lock()
	token, ok := l.tokens[key]
	delete(l.tokens, key)
	l.mu.Unlock()
	if !ok {
		return
	}
	releaseScript.Run(context.Background(), l.client, []string{"slotlock:" + key}, token)
}
