package voucher

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// InvalidPriceError is returned for negative, non-numeric, over-precise or
// overflowing price input.
type InvalidPriceError struct {
	Input  string
	Reason string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %q: %s", e.Input, e.Reason)
}

// VerificationMismatchError means the recovered signer is not the expected one.
type VerificationMismatchError struct {
	Expected  common.Address
	Recovered common.Address
}

func (e *VerificationMismatchError) Error() string {
	return fmt.Sprintf("signature mismatch: recovered %s, expected %s", e.Recovered.Hex(), e.Expected.Hex())
}

// MalformedPayloadError is returned when a serialized voucher cannot be parsed
// or lacks a required field.
type MalformedPayloadError struct {
	Field string
	Err   error
}

func (e *MalformedPayloadError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("malformed payload: %s: %v", e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("malformed payload: missing %s", e.Field)
	default:
		return fmt.Sprintf("malformed payload: %v", e.Err)
	}
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }
