// Package bootstrap wires configuration into a ready Minter for the binaries.
package bootstrap

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/0gfoundation/0g-signature-mint/internal/chain"
	"github.com/0gfoundation/0g-signature-mint/internal/config"
	"github.com/0gfoundation/0g-signature-mint/internal/keys"
	"github.com/0gfoundation/0g-signature-mint/internal/minter"
)

// Deps is everything built from one configuration.
type Deps struct {
	Minter   *minter.Minter
	Chain    *chain.Client
	Contract common.Address
	// Key is nil when no key source is configured.
	Key *keys.Signer
	// Redis is nil when redis.addr is unset.
	Redis *redis.Client
}

// Close releases the RPC and Redis connections.
func (d *Deps) Close() {
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
	if d.Chain != nil {
		d.Chain.Close()
	}
}

// Build loads the signing key, dials the ledger and picks the token id
// source. needKey makes a missing key an error.
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger, needKey bool) (*Deps, error) {
	if cfg.Chain.ContractAddress == "" {
		return nil, fmt.Errorf("required config missing: NFT_CONTRACT")
	}
	d := &Deps{Contract: common.HexToAddress(cfg.Chain.ContractAddress)}

	switch {
	case cfg.HasKeySource():
		key, err := keys.Load(ctx, keys.Source{
			PrivateKeyHex: cfg.Signer.PrivateKey,
			TappAddr:      cfg.Signer.TappAddr,
			TappAppID:     cfg.Signer.TappAppID,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("load signing key: %w", err)
		}
		d.Key = key
	case needKey:
		return nil, keys.ErrNoKey
	}

	var sender *ecdsa.PrivateKey
	if d.Key != nil {
		sender = d.Key.PrivateKey()
	}
	client, err := chain.NewClient(ctx, cfg.Chain.RPCURL, d.Contract, sender)
	if err != nil {
		return nil, err
	}
	d.Chain = client

	var res minter.Reserver = minter.NopReserver{}
	if cfg.Redis.Addr != "" {
		d.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		if err := d.Redis.Ping(ctx).Err(); err != nil {
			d.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		ttl := time.Duration(cfg.Mint.ReservationTTLSec) * time.Second
		res = minter.NewRedisReserver(d.Redis, d.Contract, ttl)
	}

	ids, err := minter.NewIDSource(cfg.Mint.IDStrategy, client, res, cfg.Mint.MaxIDAttempts)
	if err != nil {
		d.Close()
		return nil, err
	}

	// A nil *keys.Signer must not become a non-nil KeyHolder.
	var holder minter.KeyHolder
	if d.Key != nil {
		holder = d.Key
		log.Warn("token id strategy",
			zap.String("strategy", cfg.Mint.IDStrategy),
			zap.String("note", minter.StrategyWarning(cfg.Mint.IDStrategy, d.Redis != nil)),
		)
	}
	d.Minter = minter.New(client, d.Contract, holder, ids, log)
	return d, nil
}
