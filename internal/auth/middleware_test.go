package auth

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/0gfoundation/0g-signature-mint/internal/keys"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testContract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

// testSetup creates a miniredis instance and a Gin engine with the auth
// middleware wired in front of a handler that echoes the body.
func testSetup(t *testing.T, operators ...common.Address) (*miniredis.Miniredis, *gin.Engine) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := gin.New()
	mw := Middleware(rdb, Options{Operators: operators, Contract: testContract})
	r.POST("/test", mw, RequireAction("test"), func(c *gin.Context) {
		body, _ := c.GetRawData()
		c.JSON(http.StatusOK, gin.H{"wallet": c.GetString(WalletKey), "body": string(body)})
	})
	return mr, r
}

func newWallet(t *testing.T) *keys.Signer {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	return keys.NewSigner(key)
}

// buildRequest signs sr with w and attaches body.
func buildRequest(t *testing.T, w *keys.Signer, sr SignedRequest, body []byte) *http.Request {
	t.Helper()
	msg, _ := json.Marshal(sr)
	sig, err := SignMessage(msg, w.SignHash)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(body))
	req.Header.Set("X-Wallet-Address", w.Address().Hex())
	req.Header.Set("X-Signed-Message", base64.StdEncoding.EncodeToString(msg))
	req.Header.Set("X-Wallet-Signature", hexutil.Encode(sig))
	return req
}

func validSigned(body []byte, nonce string) SignedRequest {
	return SignedRequest{
		Action:    "test",
		BodyHash:  BodyHash(body),
		Contract:  testContract.Hex(),
		ExpiresAt: time.Now().Add(2 * time.Minute).Unix(),
		Nonce:     nonce,
	}
}

func serve(r *gin.Engine, req *http.Request) (int, map[string]string) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w.Code, resp
}

func TestMiddleware_ValidRequest(t *testing.T) {
	wallet := newWallet(t)
	_, r := testSetup(t, wallet.Address())
	body := []byte(`{"price":"1.5"}`)

	code, resp := serve(r, buildRequest(t, wallet, validSigned(body, "nonce-valid-1"), body))
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", code, resp)
	}
	if resp["wallet"] != wallet.Address().Hex() {
		t.Errorf("wallet = %q", resp["wallet"])
	}
	if resp["body"] != string(body) {
		t.Errorf("body should be readable after the middleware, got %q", resp["body"])
	}
}

func TestMiddleware_SignHeaders(t *testing.T) {
	wallet := newWallet(t)
	_, r := testSetup(t, wallet.Address())
	body := []byte(`{}`)

	h, err := SignHeaders(wallet, "test", testContract, body, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(body))
	req.Header = h
	if code, resp := serve(r, req); code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", code, resp)
	}
}

func TestMiddleware_MissingHeaders(t *testing.T) {
	_, r := testSetup(t)
	if code, _ := serve(r, httptest.NewRequest(http.MethodPost, "/test", nil)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestMiddleware_Rejections(t *testing.T) {
	body := []byte(`{"uri":"ipfs://QmTest"}`)
	cases := []struct {
		name   string
		mutate func(sr *SignedRequest)
		want   string
	}{
		{"expired", func(sr *SignedRequest) { sr.ExpiresAt = time.Now().Add(-time.Second).Unix() }, "request expired"},
		{"too far", func(sr *SignedRequest) { sr.ExpiresAt = time.Now().Add(10 * time.Minute).Unix() }, "expires_at too far in future"},
		{"other contract", func(sr *SignedRequest) { sr.Contract = "0x0000000000000000000000000000000000000001" }, "signed for another contract"},
		{"body hash", func(sr *SignedRequest) { sr.BodyHash = BodyHash([]byte("{}")) }, "body does not match signed hash"},
		{"action", func(sr *SignedRequest) { sr.Action = "redeem" }, "signed action does not match endpoint"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wallet := newWallet(t)
			_, r := testSetup(t, wallet.Address())
			sr := validSigned(body, "nonce-"+tc.name)
			tc.mutate(&sr)
			code, resp := serve(r, buildRequest(t, wallet, sr, body))
			if code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d: %v", code, resp)
			}
			if resp["error"] != tc.want {
				t.Errorf("unexpected error: %s", resp["error"])
			}
		})
	}
}

func TestMiddleware_InvalidSignature(t *testing.T) {
	_, r := testSetup(t)
	body := []byte(`{}`)

	// Valid request with a different claimed wallet
	req := buildRequest(t, newWallet(t), validSigned(body, "nonce-badsig-1"), body)
	req.Header.Set("X-Wallet-Address", "0x000000000000000000000000000000000000dEaD")

	code, resp := serve(r, req)
	if code != http.StatusUnauthorized || resp["error"] != "invalid signature" {
		t.Fatalf("expected 401 invalid signature, got %d: %v", code, resp)
	}
}

func TestMiddleware_OperatorAllowlist(t *testing.T) {
	operator := newWallet(t)
	_, r := testSetup(t, operator.Address())
	body := []byte(`{}`)

	code, _ := serve(r, buildRequest(t, operator, validSigned(body, "nonce-op-1"), body))
	if code != http.StatusOK {
		t.Fatalf("operator: expected 200, got %d", code)
	}
	code, resp := serve(r, buildRequest(t, newWallet(t), validSigned(body, "nonce-op-2"), body))
	if code != http.StatusForbidden {
		t.Fatalf("stranger: expected 403, got %d: %v", code, resp)
	}
}

func TestMiddleware_NoOperatorsRejectsEveryone(t *testing.T) {
	mr, r := testSetup(t)
	body := []byte(`{}`)

	code, resp := serve(r, buildRequest(t, newWallet(t), validSigned(body, "nonce-open-1"), body))
	if code != http.StatusForbidden {
		t.Fatalf("expected 403 with an empty allowlist, got %d: %v", code, resp)
	}
	if mr.Exists(nonceKeyPrefix + "nonce-open-1") {
		t.Error("a rejected wallet should not consume a nonce")
	}
}

func TestMiddleware_NonceReplay(t *testing.T) {
	first, second := newWallet(t), newWallet(t)
	_, r := testSetup(t, first.Address(), second.Address())
	body := []byte(`{}`)

	code, _ := serve(r, buildRequest(t, first, validSigned(body, "nonce-replay-1"), body))
	if code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}

	// Same nonce from a different wallet is still blocked.
	code, resp := serve(r, buildRequest(t, second, validSigned(body, "nonce-replay-1"), body))
	if code != http.StatusUnauthorized || resp["error"] != "nonce already used" {
		t.Fatalf("replay: expected 401 nonce already used, got %d: %v", code, resp)
	}
}

func TestMiddleware_NonceTTL(t *testing.T) {
	wallet := newWallet(t)
	mr, r := testSetup(t, wallet.Address())
	body := []byte(`{}`)

	code, _ := serve(r, buildRequest(t, wallet, validSigned(body, "nonce-ttl-1"), body))
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	ttl := mr.TTL(nonceKeyPrefix + "nonce-ttl-1")
	if ttl <= 0 || ttl > 2*time.Minute {
		t.Fatalf("nonce TTL = %s, want (0, 2m]", ttl)
	}
	mr.FastForward(3 * time.Minute)
	if mr.Exists(nonceKeyPrefix + "nonce-ttl-1") {
		t.Error("nonce should expire with the request")
	}
}
