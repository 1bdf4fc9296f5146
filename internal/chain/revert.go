package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// LedgerRevertError is returned when the contract rejects a call or
// transaction. TxHash is zero when the rejection happened before broadcast.
type LedgerRevertError struct {
	Reason string
	TxHash common.Hash
	Err    error
}

func (e *LedgerRevertError) Error() string {
	if e.TxHash != (common.Hash{}) {
		return fmt.Sprintf("ledger reverted tx %s: %s", e.TxHash.Hex(), e.Reason)
	}
	return fmt.Sprintf("ledger reverted: %s", e.Reason)
}

func (e *LedgerRevertError) Unwrap() error { return e.Err }

const revertPrefix = "execution reverted"

// RevertReason extracts the revert reason from a node error. The second
// result is false when err is not an EVM revert at all.
func RevertReason(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var de rpc.DataError
	if errors.As(err, &de) {
		if reason, ok := decodeRevertData(de.ErrorData()); ok {
			return reason, true
		}
	}
	msg := err.Error()
	i := strings.Index(msg, revertPrefix)
	if i < 0 {
		return "", false
	}
	reason := strings.TrimSpace(strings.TrimPrefix(msg[i+len(revertPrefix):], ":"))
	if reason == "" {
		reason = revertPrefix
	}
	return reason, true
}

func decodeRevertData(data interface{}) (string, bool) {
	s, ok := data.(string)
	if !ok {
		return "", false
	}
	raw, err := hexutil.Decode(s)
	if err != nil || len(raw) < 4 {
		return "", false
	}
	if reason, err := abi.UnpackRevert(raw); err == nil {
		return reason, true
	}
	// Custom error: report the selector, the caller can match it against the ABI.
	return "custom error " + hexutil.Encode(raw[:4]), true
}
