package voucher

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NativeCurrency is the sentinel currency address meaning "pay in the chain's
// native asset" rather than an ERC-20 token.
var NativeCurrency = common.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE")

// MintVoucher authorizes a single future mint. Field order mirrors the
// MintVoucher struct hashed by the contract and must not change.
//
// A voucher must not be mutated once signed: the signature covers the exact
// encoding of every field.
type MintVoucher struct {
	UniqueID        *big.Int
	Recipient       common.Address
	URI             string
	Price           *big.Int // wei, 18-decimal fixed point
	Currency        common.Address
	PaymentReceiver common.Address
}

// SignedVoucher is the unit exchanged out-of-band and redeemed once.
type SignedVoucher struct {
	Voucher   MintVoucher
	Signature []byte
}

// Request is the human-facing mint request before canonicalization.
type Request struct {
	Recipient       string `json:"recipient" validate:"required,eth_addr"`
	URI             string `json:"uri" validate:"required"`
	Price           string `json:"price" validate:"required"`
	PaymentReceiver string `json:"paymentReceiver" validate:"required,eth_addr"`
	Currency        string `json:"currency,omitempty" validate:"omitempty,eth_addr"`
}

// IsNative reports whether the voucher is paid in the native asset.
func (v *MintVoucher) IsNative() bool {
	return v.Currency == NativeCurrency
}

// PaymentValue is the native amount that must accompany redemption: the
// price for native-currency vouchers, zero otherwise.
func PaymentValue(v *MintVoucher) *big.Int {
	if v.IsNative() && v.Price != nil {
		return new(big.Int).Set(v.Price)
	}
	return new(big.Int)
}

// Clone returns a deep copy so callers can mutate without touching a signed
// original.
func (v *MintVoucher) Clone() *MintVoucher {
	out := *v
	if v.UniqueID != nil {
		out.UniqueID = new(big.Int).Set(v.UniqueID)
	}
	if v.Price != nil {
		out.Price = new(big.Int).Set(v.Price)
	}
	return &out
}
