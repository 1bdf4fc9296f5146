package minter

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/0gfoundation/0g-signature-mint/internal/voucher"
)

// RoleRegistry is the enumerable role set kept by the contract.
type RoleRegistry interface {
	RoleMemberCount(ctx context.Context, role [32]byte) (*big.Int, error)
	RoleMember(ctx context.Context, role [32]byte, index *big.Int) (common.Address, error)
}

// CheckMinter enumerates the members of role and fails with
// *UnauthorizedSignerError unless candidate is one of them.
//
// The result is advisory. Membership can be revoked before the voucher is
// redeemed and the contract checks again at that point.
func CheckMinter(ctx context.Context, registry RoleRegistry, role string, candidate common.Address) error {
	id := voucher.RoleHash(role)
	count, err := registry.RoleMemberCount(ctx, id)
	if err != nil {
		return fmt.Errorf("role member count: %w", err)
	}
	for i := new(big.Int); i.Cmp(count) < 0; i.Add(i, big.NewInt(1)) {
		member, err := registry.RoleMember(ctx, id, new(big.Int).Set(i))
		if err != nil {
			return fmt.Errorf("role member: %w", err)
		}
		if member == candidate {
			return nil
		}
	}
	return &UnauthorizedSignerError{Signer: candidate, Role: role}
}
