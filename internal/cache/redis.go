package cache

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 200

// Redis — реализация Store поверх Redis для нескольких инстансов сервиса.
//
// Запись хранится как Redis Hash с полями v (значение) и ts (unix nano).
// Серверный EXPIRE не ставится: TTL задаётся при чтении, как и в Memory.
type Redis struct {
	rdb    *redis.Client
	prefix string
	now    Clock
}

// NewRedis создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "risksense:".
func NewRedis(redisURL, prefix string, now Clock) (*Redis, error) {
	if prefix == "" {
		prefix = "risksense:"
	}

	if now == nil {
		now = time.Now
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &Redis{rdb: rdb, prefix: prefix, now: now}, nil
}

func (c *Redis) key(k string) string { return c.prefix + k }

func (c *Redis) Get(ctx context.Context, key string, ttl time.Duration) ([]byte, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(key)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	ts, err := strconv.ParseInt(m["ts"], 10, 64)
	if err != nil {
		// Запись без валидной метки времени считаем мусором.
		_ = c.rdb.Del(ctx, c.key(key)).Err()
		return nil, false, nil
	}

	if c.now().Sub(time.Unix(0, ts)) > ttl {
		if err := c.rdb.Del(ctx, c.key(key)).Err(); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}

	return []byte(m["v"]), true, nil
}

func (c *Redis) Set(ctx context.Context, key string, value []byte) error {
	kv := map[string]any{
		"v":  value,
		"ts": strconv.FormatInt(c.now().UnixNano(), 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, c.key(key))
	pipe.HSet(ctx, c.key(key), kv)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *Redis) Clear(ctx context.Context, prefix string) error {
	keys, err := c.scan(ctx, c.key(prefix)+"*")
	if err != nil {
		return err
	}

	for start := 0; start < len(keys); start += scanBatch {
		end := min(start+scanBatch, len(keys))
		if err := c.rdb.Del(ctx, keys[start:end]...).Err(); err != nil {
			return err
		}
	}

	return nil
}

func (c *Redis) Stats(ctx context.Context) (Stats, error) {
	keys, err := c.scan(ctx, c.prefix+"*")
	if err != nil {
		return Stats{}, err
	}

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, strings.TrimPrefix(k, c.prefix))
	}
	sort.Strings(out)

	return Stats{Size: len(out), Keys: out}, nil
}

func (c *Redis) Close() error { return c.rdb.Close() }

func (c *Redis) scan(ctx context.Context, pattern string) ([]string, error) {
	var (
		cursor uint64
		out    []string
	)

	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, escapeGlob(pattern), scanBatch).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return out, nil
			}
			return nil, err
		}

		out = append(out, keys...)
		if next == 0 {
			return out, nil
		}
		cursor = next
	}
}

// escapeGlob экранирует спецсимволы glob-шаблона, кроме завершающей "*".
func escapeGlob(pattern string) string {
	body, star := strings.CutSuffix(pattern, "*")

	var b strings.Builder
	for _, r := range body {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	if star {
		b.WriteByte('*')
	}

	return b.String()
}
