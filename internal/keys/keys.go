// Package keys loads the key that signs mint vouchers.
//
// The key comes either from configuration (a hex private key, for development
// and CI) or from the local tapp-daemon over gRPC when running inside a TEE.
package keys

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// ErrNoKey means neither a private key nor a key daemon was configured.
var ErrNoKey = errors.New("keys: no signing key configured")

// Source says where to find the signing key. PrivateKeyHex wins when both
// are set.
type Source struct {
	PrivateKeyHex string
	TappAddr      string
	TappAppID     string
}

// Signer holds an in-memory secp256k1 key.
type Signer struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

func NewSigner(key *ecdsa.PrivateKey) *Signer {
	return &Signer{key: key, addr: crypto.PubkeyToAddress(key.PublicKey)}
}

// ParseHex accepts a 32-byte hex key with or without 0x.
func ParseHex(raw string) (*Signer, error) {
	keyHex := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if len(keyHex) != 64 {
		return nil, fmt.Errorf("keys: private key must be a 32-byte hex string (got %d chars)", len(keyHex))
	}
	key, err := crypto.HexToECDSA(keyHex)
	if err != nil {
		return nil, fmt.Errorf("keys: parse private key: %w", err)
	}
	return NewSigner(key), nil
}

// Load resolves src into a Signer.
func Load(ctx context.Context, src Source, log *zap.Logger) (*Signer, error) {
	switch {
	case src.PrivateKeyHex != "":
		s, err := ParseHex(src.PrivateKeyHex)
		if err != nil {
			return nil, err
		}
		log.Info("signing key loaded from config", zap.String("address", s.Address().Hex()))
		return s, nil
	case src.TappAddr != "":
		s, err := FetchFromTapp(ctx, src.TappAddr, src.TappAppID)
		if err != nil {
			return nil, err
		}
		log.Info("signing key loaded from tapp-daemon",
			zap.String("addr", src.TappAddr),
			zap.String("address", s.Address().Hex()),
		)
		return s, nil
	default:
		return nil, ErrNoKey
	}
}

// Address is the signer's Ethereum address.
func (s *Signer) Address() common.Address { return s.addr }

// PrivateKey exposes the key for transaction signing.
func (s *Signer) PrivateKey() *ecdsa.PrivateKey { return s.key }

// SignHash signs a 32-byte digest. V is returned as 27/28.
func (s *Signer) SignHash(hash []byte) ([]byte, error) {
	sig, err := crypto.Sign(hash, s.key)
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}
