package minter

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ReservationKeyFmt is the Redis key for a held token id:
// mint:reserve:{contract}:{tokenId}
const ReservationKeyFmt = "mint:reserve:%s:%s"

// Reserver holds a token id for the lifetime of a signing attempt so that two
// signers sharing the same store never hand out the same id.
type Reserver interface {
	Reserve(ctx context.Context, id *big.Int) (bool, error)
	Release(ctx context.Context, id *big.Int) error
}

// releaseScript deletes the key only if this process still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisReserver keeps reservations as SET NX keys with a TTL. A reservation
// that is never released expires on its own.
type RedisReserver struct {
	rdb      *redis.Client
	contract common.Address
	ttl      time.Duration
	owner    string
}

func NewRedisReserver(rdb *redis.Client, contract common.Address, ttl time.Duration) *RedisReserver {
	return &RedisReserver{
		rdb:      rdb,
		contract: contract,
		ttl:      ttl,
		owner:    uuid.NewString(),
	}
}

func (r *RedisReserver) key(id *big.Int) string {
	return fmt.Sprintf(ReservationKeyFmt, strings.ToLower(r.contract.Hex()), id.String())
}

// Reserve returns false when another signer already holds id.
func (r *RedisReserver) Reserve(ctx context.Context, id *big.Int) (bool, error) {
	ok, err := r.rdb.SetNX(ctx, r.key(id), r.owner, r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve token id %s: %w", id, err)
	}
	return ok, nil
}

// Release drops a reservation this reserver holds. Releasing an id held by
// someone else, or already expired, is a no-op.
func (r *RedisReserver) Release(ctx context.Context, id *big.Int) error {
	if err := releaseScript.Run(ctx, r.rdb, []string{r.key(id)}, r.owner).Err(); err != nil {
		return fmt.Errorf("release token id %s: %w", id, err)
	}
	return nil
}

// NopReserver grants every reservation. Used when no Redis is configured.
type NopReserver struct{}

func (NopReserver) Reserve(context.Context, *big.Int) (bool, error) { return true, nil }
func (NopReserver) Release(context.Context, *big.Int) error { return nil }
