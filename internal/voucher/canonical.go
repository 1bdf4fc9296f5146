package voucher

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Canonicalize turns a human-facing request into the typed voucher fields the
// verifier hashes. UniqueID is left nil for the builder to fill.
func Canonicalize(req Request) (*MintVoucher, error) {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &MalformedPayloadError{Field: verrs[0].Field(), Err: verrs[0]}
		}
		return nil, &MalformedPayloadError{Err: err}
	}

	price, err := ParsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	currency := NativeCurrency
	if req.Currency != "" {
		currency = common.HexToAddress(req.Currency)
	}

	return &MintVoucher{
		Recipient:       common.HexToAddress(req.Recipient),
		URI:             req.URI,
		Price:           price,
		Currency:        currency,
		PaymentReceiver: common.HexToAddress(req.PaymentReceiver),
	}, nil
}

// WithID returns a copy of v carrying id.
func (v *MintVoucher) WithID(id *big.Int) *MintVoucher {
	out := v.Clone()
	out.UniqueID = new(big.Int).Set(id)
	return out
}
