package minter

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNoSigningContext means the signer has no network binding to resolve the
// chain id against.
var ErrNoSigningContext = errors.New("signer has no network context")

// ErrIDExhausted is returned when no free token id was found within the
// configured number of attempts.
var ErrIDExhausted = errors.New("no free token id found")

// UnauthorizedSignerError is returned by the preflight when the signer is not
// a member of the role.
type UnauthorizedSignerError struct {
	Signer common.Address
	Role   string
}

func (e *UnauthorizedSignerError) Error() string {
	return fmt.Sprintf("signer %s does not hold %s", e.Signer.Hex(), e.Role)
}

// StaleDomainError means a domain was composed for a chain the endpoint no
// longer reports.
type StaleDomainError struct {
	Domain *big.Int
	Live   *big.Int
}

func (e *StaleDomainError) Error() string {
	return fmt.Sprintf("stale domain: chain id %s, endpoint reports %s", e.Domain, e.Live)
}

// ErrNoSigningKey means the minter was built without a key holder.
var ErrNoSigningKey = errors.New("signer has no key")
