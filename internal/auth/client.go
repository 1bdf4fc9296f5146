package auth

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
)

// Signer is the wallet side of the handshake. *keys.Signer implements it.
type Signer interface {
	Address() common.Address
	SignHash(hash []byte) ([]byte, error)
}

// SignHeaders builds the X-Wallet-* headers for a request carrying body.
// A random nonce is used and the request expires after ttl.
func SignHeaders(s Signer, action string, contract common.Address, body []byte, ttl time.Duration) (http.Header, error) {
	msg, err := json.Marshal(SignedRequest{
		Action:    action,
		BodyHash:  BodyHash(body),
		Contract:  contract.Hex(),
		ExpiresAt: time.Now().Add(ttl).Unix(),
		Nonce:     uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}
	sig, err := SignMessage(msg, s.SignHash)
	if err != nil {
		return nil, err
	}
	h := http.Header{}
	h.Set("X-Wallet-Address", s.Address().Hex())
	h.Set("X-Signed-Message", base64.StdEncoding.EncodeToString(msg))
	h.Set("X-Wallet-Signature", hexutil.Encode(sig))
	return h, nil
}
