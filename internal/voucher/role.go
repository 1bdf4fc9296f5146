package voucher

import "github.com/ethereum/go-ethereum/crypto"

// MinterRole is the role a voucher signer must hold.
const MinterRole = "MINTER_ROLE"

// DefaultAdminRole is the zero-filled identifier reserved for the admin role.
var DefaultAdminRole [32]byte

// RoleHash maps a role name to its on-chain identifier: keccak256(name), or
// the zero identifier for the empty name.
func RoleHash(name string) [32]byte {
	if name == "" {
		return DefaultAdminRole
	}
	return crypto.Keccak256Hash([]byte(name))
}
