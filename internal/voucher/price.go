package voucher

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the fixed-point precision of prices (wei per native unit).
const Decimals = 18

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// ParsePrice converts a human-entered decimal ("1.5") into wei.
func ParsePrice(s string) (*big.Int, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return nil, &InvalidPriceError{Input: s, Reason: "empty"}
	}
	// decimal accepts exponents and signs; a price is plain digits with an optional point.
	if strings.ContainsAny(in, "eE+") {
		return nil, &InvalidPriceError{Input: s, Reason: "not a plain decimal"}
	}
	if strings.HasPrefix(in, "-") {
		return nil, &InvalidPriceError{Input: s, Reason: "negative"}
	}
	d, err := decimal.NewFromString(in)
	if err != nil {
		return nil, &InvalidPriceError{Input: s, Reason: "not numeric"}
	}
	shifted := d.Shift(Decimals)
	if !shifted.IsInteger() {
		return nil, &InvalidPriceError{Input: s, Reason: "more than 18 fractional digits"}
	}
	wei := shifted.BigInt()
	if wei.Cmp(maxUint256) > 0 {
		return nil, &InvalidPriceError{Input: s, Reason: "overflows uint256"}
	}
	return wei, nil
}

// FormatPrice renders wei as the shortest decimal string in native units.
func FormatPrice(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -Decimals).String()
}
