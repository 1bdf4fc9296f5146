package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/0gfoundation/0g-signature-mint/internal/config"
	"github.com/0gfoundation/0g-signature-mint/internal/keys"
	"github.com/0gfoundation/0g-signature-mint/internal/minter"
	"github.com/0gfoundation/0g-signature-mint/internal/voucher"
)

const testKeyHex = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// Nothing listens on this port; ethclient dials HTTP lazily so Build
// succeeds and only ledger calls fail.
func testConfig() *config.Config {
	return &config.Config{
		Chain: config.ChainConfig{
			RPCURL:          "http://127.0.0.1:1",
			ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		},
		Mint: config.MintConfig{IDStrategy: minter.StrategyCounter, ReservationTTLSec: 60, MaxIDAttempts: 4},
	}
}

func TestBuild_NoContract(t *testing.T) {
	cfg := testConfig()
	cfg.Chain.ContractAddress = ""
	_, err := Build(context.Background(), cfg, zap.NewNop(), false)
	assert.ErrorContains(t, err, "NFT_CONTRACT")
}

func TestBuild_NeedKey(t *testing.T) {
	_, err := Build(context.Background(), testConfig(), zap.NewNop(), true)
	assert.True(t, errors.Is(err, keys.ErrNoKey))
}

func TestBuild_ReadOnly(t *testing.T) {
	d, err := Build(context.Background(), testConfig(), zap.NewNop(), false)
	require.NoError(t, err)
	defer d.Close()

	assert.Nil(t, d.Key)
	assert.Nil(t, d.Redis)
	_, err = d.Minter.GenerateSignature(context.Background(), voucher.Request{
		Recipient:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		URI:             "ipfs://QmTest",
		Price:           "1",
		PaymentReceiver: "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
	})
	assert.ErrorIs(t, err, minter.ErrNoSigningKey)
}

func TestBuild_WithKeyAndRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Signer.PrivateKey = testKeyHex
	cfg.Redis.Addr = mr.Addr()

	core, logs := observer.New(zap.WarnLevel)
	d, err := Build(context.Background(), cfg, zap.New(core), true)
	require.NoError(t, err)
	defer d.Close()

	require.NotNil(t, d.Key)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", d.Key.Address().Hex())
	assert.Equal(t, d.Key.Address(), d.Chain.Sender())
	require.NotNil(t, d.Redis)

	warned := logs.FilterMessage("token id strategy").All()
	require.Len(t, warned, 1)
	assert.NotContains(t, warned[0].ContextMap()["note"], "no redis")
}

func TestBuild_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Redis.Addr = mr.Addr()
	mr.Close()

	_, err := Build(context.Background(), cfg, zap.NewNop(), false)
	assert.ErrorContains(t, err, "redis ping")
}

func TestBuild_UnknownStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.Mint.IDStrategy = "sequential"
	_, err := Build(context.Background(), cfg, zap.NewNop(), false)
	assert.Error(t, err)
}
