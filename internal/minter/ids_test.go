package minter

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReservers(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *RedisReserver, *RedisReserver) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewRedisReserver(rdb, testContract, ttl), NewRedisReserver(rdb, testContract, ttl)
}

func TestRedisReserver(t *testing.T) {
	ctx := context.Background()
	mr, ours, theirs := newTestReservers(t, time.Minute)
	id := big.NewInt(7)

	ok, err := ours.Reserve(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = theirs.Reserve(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok, "a held id must not be handed out twice")

	key := "mint:reserve:" + strings.ToLower(testContract.Hex()) + ":7"
	assert.True(t, mr.Exists(key))

	// Someone else's release leaves our hold in place.
	require.NoError(t, theirs.Release(ctx, id))
	assert.True(t, mr.Exists(key))

	require.NoError(t, ours.Release(ctx, id))
	assert.False(t, mr.Exists(key))
}

func TestRedisReserver_Expires(t *testing.T) {
	ctx := context.Background()
	mr, ours, theirs := newTestReservers(t, 30*time.Second)
	id := big.NewInt(7)

	ok, err := ours.Reserve(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(31 * time.Second)

	ok, err = theirs.Reserve(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCounterSource_WalksForward(t *testing.T) {
	ctx := context.Background()
	_, ours, theirs := newTestReservers(t, time.Minute)
	ledger := newFakeLedger()

	ok, err := theirs.Reserve(ctx, big.NewInt(7))
	require.NoError(t, err)
	require.True(t, ok)

	src, err := NewIDSource(StrategyCounter, ledger, ours, 5)
	require.NoError(t, err)

	id, err := src.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), id.Int64())

	id, err = src.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id.Int64())
}

func TestCounterSource_Exhausted(t *testing.T) {
	ctx := context.Background()
	_, ours, theirs := newTestReservers(t, time.Minute)
	for _, n := range []int64{7, 8} {
		ok, err := theirs.Reserve(ctx, big.NewInt(n))
		require.NoError(t, err)
		require.True(t, ok)
	}

	src, err := NewIDSource(StrategyCounter, newFakeLedger(), ours, 2)
	require.NoError(t, err)
	_, err = src.Next(ctx)
	assert.ErrorIs(t, err, ErrIDExhausted)
}

func TestCounterSource_NoReserver(t *testing.T) {
	src, err := NewIDSource(StrategyCounter, newFakeLedger(), nil, 1)
	require.NoError(t, err)

	a, err := src.Next(context.Background())
	require.NoError(t, err)
	b, err := src.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a, b, "without reservation the counter is read as-is")
}

// firstMinted reports the first id it is asked about as already minted.
type firstMinted struct{ seen []*big.Int }

func (f *firstMinted) IsMinted(_ context.Context, id *big.Int) (bool, error) {
	f.seen = append(f.seen, new(big.Int).Set(id))
	return len(f.seen) == 1, nil
}

func TestRandomSource_SkipsMinted(t *testing.T) {
	_, ours, _ := newTestReservers(t, time.Minute)
	checker := &firstMinted{}
	src := &RandomSource{minted: checker, res: ours, maxAttempts: 3, rand: rand.Reader}

	id, err := src.Next(context.Background())
	require.NoError(t, err)
	require.Len(t, checker.seen, 2)
	assert.NotEqual(t, 0, checker.seen[0].Cmp(id))
	assert.Equal(t, 0, checker.seen[1].Cmp(id))
	assert.Less(t, id.BitLen(), 257)
}

func TestRandomSource_Exhausted(t *testing.T) {
	src := &RandomSource{minted: alwaysMinted{}, res: NopReserver{}, maxAttempts: 4, rand: rand.Reader}
	_, err := src.Next(context.Background())
	assert.ErrorIs(t, err, ErrIDExhausted)
}

type alwaysMinted struct{}

func (alwaysMinted) IsMinted(context.Context, *big.Int) (bool, error) { return true, nil }

func TestNewIDSource_Unknown(t *testing.T) {
	_, err := NewIDSource("sequential", newFakeLedger(), nil, 1)
	assert.Error(t, err)
}

func TestStrategyWarning(t *testing.T) {
	assert.Contains(t, StrategyWarning(StrategyCounter, true), "issuance order")
	assert.Contains(t, StrategyWarning(StrategyRandom, true), "ownerOf")
	assert.Contains(t, StrategyWarning(StrategyCounter, false), "not reserved")
}
