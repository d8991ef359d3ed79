package cache

import (
	"context"
	"time"

	"jobhub_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// roundTripTimeout ограничивает каждый поход в Redis: медленный кэш
// не должен тормозить запрос, деградируем в промах
const roundTripTimeout = 500 * time.Millisecond

// Client - явно создаваемый клиент кэша с жизненным циклом процесса:
// конструируется на старте, закрывается при остановке. Не синглтон.
//
// Любая ошибка backend'а (соединение, таймаут) поглощается и превращается
// в промах - наружу ошибки кэша не выходят никогда.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// New создает клиент кэша из redis URL
func New(url string, ttl time.Duration) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &Client{rdb: redis.NewClient(opts), ttl: ttl}, nil
}

// NewWithClient оборачивает готовый redis-клиент (используется в тестах)
func NewWithClient(rdb *redis.Client, ttl time.Duration) *Client {
	return &Client{rdb: rdb, ttl: ttl}
}

// Close закрывает соединение с Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}

// TTL возвращает настроенный срок жизни записей
func (c *Client) TTL() time.Duration {
	return c.ttl
}

// Get возвращает значение по ключу. Второй результат - признак попадания:
// отсутствие ключа и ошибка backend'а неразличимы для вызывающего.
func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, roundTripTimeout)
	defer cancel()

	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.CtxWarn(ctx, "cache get degraded to miss", "key", key, "error", err.Error())
		}
		return "", false
	}
	return val, true
}

// Set записывает значение с настроенным TTL. Ошибки только логируются.
func (c *Client) Set(ctx context.Context, key, value string) {
	ctx, cancel := context.WithTimeout(ctx, roundTripTimeout)
	defer cancel()

	if err := c.rdb.Set(ctx, key, value, c.ttl).Err(); err != nil {
		logger.CtxWarn(ctx, "cache set failed", "key", key, "error", err.Error())
	}
}

// Invalidate удаляет ключи. Ошибки только логируются.
func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, roundTripTimeout)
	defer cancel()

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.CtxWarn(ctx, "cache invalidate failed", "keys", keys, "error", err.Error())
	}
}

// InvalidatePattern удаляет все ключи по шаблону (KEYS + DEL).
// Приемлемо на умеренных объемах ключей.
func (c *Client) InvalidatePattern(ctx context.Context, pattern string) {
	ctx, cancel := context.WithTimeout(ctx, roundTripTimeout)
	defer cancel()

	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		logger.CtxWarn(ctx, "cache pattern lookup failed", "pattern", pattern, "error", err.Error())
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.CtxWarn(ctx, "cache invalidate failed", "pattern", pattern, "error", err.Error())
	}
}

// Ping проверяет доступность Redis (для стартовой диагностики;
// недоступный кэш не мешает запуску)
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, roundTripTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}
