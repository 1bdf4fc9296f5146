package minter

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/0gfoundation/0g-signature-mint/internal/voucher"
)

// Status is a read-only snapshot of the contract as this minter sees it.
type Status struct {
	ChainID        *big.Int         `json:"chainId"`
	Contract       common.Address   `json:"contract"`
	Signer         common.Address   `json:"signer"`
	SignerIsMinter bool             `json:"signerIsMinter"`
	Minters        []common.Address `json:"minters"`
	NextTokenID    *big.Int         `json:"nextTokenId"`
}

// Status reads the chain id, minter set and mint counter.
func (m *Minter) Status(ctx context.Context) (*Status, error) {
	chainID, err := m.ledger.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	minters, err := RoleMembers(ctx, m.ledger, voucher.MinterRole)
	if err != nil {
		return nil, err
	}
	next, err := m.ledger.NextTokenID(ctx)
	if err != nil {
		return nil, err
	}

	st := &Status{
		ChainID:     chainID,
		Contract:    m.contract,
		Signer:      m.signer.Address(),
		Minters:     minters,
		NextTokenID: next,
	}
	for _, a := range minters {
		if a == st.Signer && m.signer != nil {
			st.SignerIsMinter = true
		}
	}
	return st, nil
}

const maxPrealloc = 256

// RoleMembers lists every member of role.
func RoleMembers(ctx context.Context, registry RoleRegistry, role string) ([]common.Address, error) {
	id := voucher.RoleHash(role)
	count, err := registry.RoleMemberCount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("role member count: %w", err)
	}
	// count comes from the contract; only trust it for small sets.
	var out []common.Address
	if count.IsInt64() && count.Int64() <= maxPrealloc {
		out = make([]common.Address, 0, count.Int64())
	}
	for i := new(big.Int); i.Cmp(count) < 0; i.Add(i, big.NewInt(1)) {
		member, err := registry.RoleMember(ctx, id, new(big.Int).Set(i))
		if err != nil {
			return nil, fmt.Errorf("role member: %w", err)
		}
		out = append(out, member)
	}
	return out, nil
}
