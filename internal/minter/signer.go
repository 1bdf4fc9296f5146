package minter

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/0gfoundation/0g-signature-mint/internal/voucher"
)

// Network resolves the chain id of the live endpoint.
type Network interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// KeyHolder signs 32-byte digests. *keys.Signer implements it.
type KeyHolder interface {
	Address() common.Address
	SignHash(hash []byte) ([]byte, error)
}

// Signer binds a key to a network so every signature is made for the chain the
// endpoint reports right now.
type Signer struct {
	net Network
	key KeyHolder
}

func NewSigner(net Network, key KeyHolder) *Signer {
	return &Signer{net: net, key: key}
}

// Address is the signing address, or the zero address without a key.
func (s *Signer) Address() common.Address {
	if s == nil || s.key == nil {
		return common.Address{}
	}
	return s.key.Address()
}

// Domain composes the signing domain for contract from the live chain id.
func (s *Signer) Domain(ctx context.Context, contract common.Address) (voucher.Domain, error) {
	if s == nil || s.net == nil {
		return voucher.Domain{}, ErrNoSigningContext
	}
	chainID, err := s.net.ChainID(ctx)
	if err != nil {
		return voucher.Domain{}, err
	}
	return voucher.NewDomain(chainID, contract), nil
}

// Sign produces the EIP-712 signature of v under d. The chain id is re-read
// first and a domain built for another chain is refused.
func (s *Signer) Sign(ctx context.Context, d voucher.Domain, v *voucher.MintVoucher) (*voucher.SignedVoucher, error) {
	if s == nil || s.net == nil {
		return nil, ErrNoSigningContext
	}
	if s.key == nil {
		return nil, ErrNoSigningKey
	}
	live, err := s.net.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	if d.ChainID == nil || d.ChainID.Cmp(live) != 0 {
		return nil, &StaleDomainError{Domain: d.ChainID, Live: live}
	}
	if err := v.CheckComplete(); err != nil {
		return nil, err
	}

	digest := voucher.Digest(v, d)
	sig, err := s.key.SignHash(digest[:])
	if err != nil {
		return nil, fmt.Errorf("sign voucher: %w", err)
	}
	return &voucher.SignedVoucher{Voucher: *v.Clone(), Signature: sig}, nil
}
