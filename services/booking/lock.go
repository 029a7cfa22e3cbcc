package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// SettlementLocker serializes settlement attempts per booking. The Mongo
// transaction already rejects a second settlement; the lock just keeps two
// concurrent requests from both opening transactions against the same booking.
type SettlementLocker interface {
	Acquire(ctx context.Context, bookingID string) (bool, error)
	Release(ctx context.Context, bookingID string)
}

const settlementLockTTL = 30 * time.Second

// RedisSettlementLocker implements SettlementLocker with SETNX.
type RedisSettlementLocker struct {
	Client *redis.Client
}

func (l *RedisSettlementLocker) Acquire(ctx context.Context, bookingID string) (bool, error) {
	return l.Client.SetNX(ctx, "settle:"+bookingID, 1, settlementLockTTL).Result()
}

func (l *RedisSettlementLocker) Release(ctx context.Context, bookingID string) {
	l.Client.Del(ctx, "settle:"+bookingID)
}
