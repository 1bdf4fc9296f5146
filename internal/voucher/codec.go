package voucher

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
)

// voucherJSON is the wire form. Integers travel as strings: uniqueId in
// decimal, price in native units ("1.5") so operators can read it.
type voucherJSON struct {
	UniqueID        *string `json:"uniqueId"`
	Recipient       *string `json:"recipient"`
	URI             *string `json:"uri"`
	Price           *string `json:"price"`
	Currency        *string `json:"currency"`
	PaymentReceiver *string `json:"paymentReceiver"`
}

type signedVoucherJSON struct {
	Voucher   *voucherJSON `json:"voucher"`
	Signature *string      `json:"signature"`
}

func (v MintVoucher) MarshalJSON() ([]byte, error) {
	if v.UniqueID == nil {
		return nil, &MalformedPayloadError{Field: "uniqueId"}
	}
	id := v.UniqueID.String()
	recipient := v.Recipient.Hex()
	price := FormatPrice(v.Price)
	currency := v.Currency.Hex()
	receiver := v.PaymentReceiver.Hex()
	uri := v.URI
	return json.Marshal(voucherJSON{
		UniqueID:        &id,
		Recipient:       &recipient,
		URI:             &uri,
		Price:           &price,
		Currency:        &currency,
		PaymentReceiver: &receiver,
	})
}

func (v *MintVoucher) UnmarshalJSON(data []byte) error {
	var w voucherJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return &MalformedPayloadError{Err: err}
	}
	return w.decode(v)
}

func (w *voucherJSON) decode(v *MintVoucher) error {
	if w.UniqueID == nil {
		return &MalformedPayloadError{Field: "uniqueId"}
	}
	id, ok := math.ParseBig256(*w.UniqueID)
	if !ok {
		return &MalformedPayloadError{Field: "uniqueId", Err: fmt.Errorf("not a uint256: %q", *w.UniqueID)}
	}
	if w.URI == nil {
		return &MalformedPayloadError{Field: "uri"}
	}
	if w.Price == nil {
		return &MalformedPayloadError{Field: "price"}
	}
	price, err := ParsePrice(*w.Price)
	if err != nil {
		return &MalformedPayloadError{Field: "price", Err: err}
	}
	recipient, err := decodeAddress("recipient", w.Recipient)
	if err != nil {
		return err
	}
	currency, err := decodeAddress("currency", w.Currency)
	if err != nil {
		return err
	}
	receiver, err := decodeAddress("paymentReceiver", w.PaymentReceiver)
	if err != nil {
		return err
	}

	*v = MintVoucher{
		UniqueID:        id,
		Recipient:       recipient,
		URI:             *w.URI,
		Price:           price,
		Currency:        currency,
		PaymentReceiver: receiver,
	}
	return nil
}

func decodeAddress(field string, s *string) (common.Address, error) {
	if s == nil {
		return common.Address{}, &MalformedPayloadError{Field: field}
	}
	if !common.IsHexAddress(*s) {
		return common.Address{}, &MalformedPayloadError{Field: field, Err: fmt.Errorf("not an address: %q", *s)}
	}
	return common.HexToAddress(*s), nil
}

func (sv SignedVoucher) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(sv.Voucher)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Voucher   json.RawMessage `json:"voucher"`
		Signature string          `json:"signature"`
	}{raw, hexutil.Encode(sv.Signature)})
}

func (sv *SignedVoucher) UnmarshalJSON(data []byte) error {
	var w signedVoucherJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return &MalformedPayloadError{Err: err}
	}
	if w.Voucher == nil {
		return &MalformedPayloadError{Field: "voucher"}
	}
	if w.Signature == nil {
		return &MalformedPayloadError{Field: "signature"}
	}
	var v MintVoucher
	if err := w.Voucher.decode(&v); err != nil {
		return err
	}
	sigHex := *w.Signature
	if !strings.HasPrefix(sigHex, "0x") {
		sigHex = "0x" + sigHex
	}
	sig, err := hexutil.Decode(sigHex)
	if err != nil {
		return &MalformedPayloadError{Field: "signature", Err: err}
	}
	sv.Voucher = v
	sv.Signature = sig
	return nil
}

// DecodeSignedVoucher parses a serialized voucher+signature. Input that was
// string-escaped once for the shell (a JSON string holding the object) is
// unwrapped first.
func DecodeSignedVoucher(data []byte) (*SignedVoucher, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return nil, &MalformedPayloadError{Err: err}
		}
		trimmed = inner
	}
	var sv SignedVoucher
	if err := json.Unmarshal([]byte(trimmed), &sv); err != nil {
		var mp *MalformedPayloadError
		if errors.As(err, &mp) {
			return nil, mp
		}
		return nil, &MalformedPayloadError{Err: err}
	}
	return &sv, nil
}
