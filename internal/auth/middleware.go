package auth

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SignedRequest is the JSON payload inside X-Signed-Message (fields sorted).
type SignedRequest struct {
	Action    string `json:"action"`
	BodyHash  string `json:"body_hash"`
	Contract  string `json:"contract"`
	ExpiresAt int64  `json:"expires_at"`
	Nonce     string `json:"nonce"`
}

// Context keys set for downstream handlers.
const (
	WalletKey = "wallet_address"
	ActionKey = "signed_action"
)

const (
	maxFutureWindow = 5 * time.Minute
	maxBodyBytes    = 1 << 20
	nonceKeyPrefix  = "mint:nonce:"
)

// Options scopes which wallets may call and for which contract.
type Options struct {
	// Operators allowed through. Empty rejects every wallet.
	Operators []common.Address
	Contract  common.Address
}

// BodyHash is the value a client puts in SignedRequest.BodyHash.
func BodyHash(body []byte) string {
	return hexutil.Encode(crypto.Keccak256(body))
}

// Middleware returns a Gin handler that validates EIP-191 wallet signatures.
func Middleware(rdb *redis.Client, opts Options) gin.HandlerFunc {
	allowed := make(map[common.Address]bool, len(opts.Operators))
	for _, op := range opts.Operators {
		allowed[op] = true
	}

	return func(c *gin.Context) {
		walletAddr := c.GetHeader("X-Wallet-Address")
		signedMsgB64 := c.GetHeader("X-Signed-Message")
		sigHex := c.GetHeader("X-Wallet-Signature")

		if walletAddr == "" || signedMsgB64 == "" || sigHex == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth headers"})
			return
		}

		// Decode signed message
		msgBytes, err := base64.StdEncoding.DecodeString(signedMsgB64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid X-Signed-Message encoding"})
			return
		}

		var req SignedRequest
		if err := json.Unmarshal(msgBytes, &req); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid signed message JSON"})
			return
		}

		now := time.Now().Unix()

		// Check expiry
		if req.ExpiresAt <= now {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "request expired"})
			return
		}
		if req.ExpiresAt > now+int64(maxFutureWindow.Seconds()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "expires_at too far in future"})
			return
		}
		if !common.IsHexAddress(req.Contract) || common.HexToAddress(req.Contract) != opts.Contract {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "signed for another contract"})
			return
		}

		// Decode signature
		sigHex = strings.TrimPrefix(sigHex, "0x")
		sig, err := hex.DecodeString(sigHex)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid signature hex"})
			return
		}

		// Recover signer
		recovered, err := Recover(msgBytes, sig)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
		if !strings.EqualFold(recovered.Hex(), walletAddr) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
		if !allowed[recovered] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "wallet is not an operator"})
			return
		}

		// The signature covers the body through its hash.
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "read body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		if !strings.EqualFold(BodyHash(body), req.BodyHash) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "body does not match signed hash"})
			return
		}

		// Nonce dedup via Redis SET NX
		nonceKey := nonceKeyPrefix + req.Nonce
		ttl := time.Duration(req.ExpiresAt-now) * time.Second
		set, err := rdb.SetNX(c.Request.Context(), nonceKey, 1, ttl).Result()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if !set {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "nonce already used"})
			return
		}

		c.Set(WalletKey, recovered.Hex())
		c.Set(ActionKey, req.Action)
		c.Next()
	}
}

// RequireAction rejects requests whose signed action is not action, so a
// signature made for one endpoint cannot be replayed against another.
func RequireAction(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ActionKey) != action {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "signed action does not match endpoint"})
			return
		}
		c.Next()
	}
}
