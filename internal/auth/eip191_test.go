package auth

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/0gfoundation/0g-signature-mint/internal/keys"
)

func TestHashMessage_Deterministic(t *testing.T) {
	msg := []byte(`{"action":"generate-signature"}`)
	if string(HashMessage(msg)) != string(HashMessage(msg)) {
		t.Fatal("HashMessage is not deterministic")
	}
	if string(HashMessage([]byte("foo"))) == string(HashMessage([]byte("bar"))) {
		t.Fatal("different messages produced the same hash")
	}
	if n := len(HashMessage([]byte("test"))); n != 32 {
		t.Fatalf("expected 32 bytes, got %d", n)
	}
}

func TestRecover_ValidSignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	signer := keys.NewSigner(key)

	msg := []byte(`{"action":"redeem","nonce":"abc"}`)
	sig, err := SignMessage(msg, signer.SignHash)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Recover(msg, sig)
	if err != nil {
		t.Fatalf("Recover error: %v", err)
	}
	if got != signer.Address() {
		t.Errorf("got %s, want %s", got.Hex(), signer.Address().Hex())
	}

	// V in {0,1} is accepted too.
	sig[64] -= 27
	if got, err := Recover(msg, sig); err != nil || got != signer.Address() {
		t.Errorf("raw V: got %s, %v", got.Hex(), err)
	}
}

func TestRecover_WrongMessage(t *testing.T) {
	key, _ := crypto.GenerateKey()
	signer := keys.NewSigner(key)

	sig, _ := SignMessage([]byte("original message"), signer.SignHash)
	wrong, err := Recover([]byte("tampered message"), sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wrong == signer.Address() {
		t.Error("tampered message should not recover the original signer")
	}
}

func TestRecover_HighS(t *testing.T) {
	key, _ := crypto.GenerateKey()
	msg := []byte("msg")
	sig, _ := SignMessage(msg, keys.NewSigner(key).SignHash)

	n := crypto.S256().Params().N
	s := new(big.Int).SetBytes(sig[32:64])
	new(big.Int).Sub(n, s).FillBytes(sig[32:64])
	sig[64] = 27 + (sig[64]-27)^1

	if _, err := Recover(msg, sig); err == nil {
		t.Fatal("expected high-s signature to be rejected")
	}
}

func TestRecover_InvalidSigLength(t *testing.T) {
	if _, err := Recover([]byte("msg"), []byte("tooshort")); err == nil {
		t.Fatal("expected error for short signature")
	}
}
