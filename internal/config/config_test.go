package config

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RPC_URL", "http://127.0.0.1:8545")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Mint.IDStrategy != "counter" {
		t.Errorf("id strategy = %q, want counter", cfg.Mint.IDStrategy)
	}
	if cfg.Mint.ReservationTTLSec != 300 || cfg.Mint.MaxIDAttempts != 16 {
		t.Errorf("unexpected mint defaults: %+v", cfg.Mint)
	}
	if cfg.HasKeySource() {
		t.Error("no key source should be configured by default")
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("RPC_URL", "http://127.0.0.1:8545")
	t.Setenv("NFT_CONTRACT", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	t.Setenv("MINTER_PRIVATE_KEY", "0xabc")
	t.Setenv("ID_STRATEGY", "random")
	t.Setenv("MAX_ID_ATTEMPTS", "4")
	t.Setenv("PORT", "9090")
	t.Setenv("OPERATORS", "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa,0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Chain.ContractAddress != "0x5FbDB2315678afecb367f032d93F642f64180aa3" {
		t.Errorf("contract = %q", cfg.Chain.ContractAddress)
	}
	if cfg.Mint.IDStrategy != "random" || cfg.Mint.MaxIDAttempts != 4 {
		t.Errorf("mint = %+v", cfg.Mint)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if !cfg.HasKeySource() {
		t.Error("private key should count as a key source")
	}
	ops := cfg.OperatorAddresses()
	if len(ops) != 2 || ops[1] != common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb") {
		t.Errorf("operators = %v", ops)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"no rpc", map[string]string{}, "RPC_URL"},
		{"bad contract", map[string]string{"RPC_URL": "x", "NFT_CONTRACT": "0x12"}, "NFT_CONTRACT"},
		{"bad strategy", map[string]string{"RPC_URL": "x", "ID_STRATEGY": "sequential"}, "ID_STRATEGY"},
		{"zero attempts", map[string]string{"RPC_URL": "x", "MAX_ID_ATTEMPTS": "0"}, "MAX_ID_ATTEMPTS"},
		{"bad operator", map[string]string{"RPC_URL": "x", "OPERATORS": "alice"}, "OPERATORS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("RPC_URL", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %s, got %v", tc.want, err)
			}
		})
	}
}

func TestLogConfig_NewLogger(t *testing.T) {
	log, err := LogConfig{Level: "debug"}.NewLogger()
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if !log.Core().Enabled(-1) {
		t.Error("debug level should be enabled")
	}
	if _, err := (LogConfig{Level: "loud"}).NewLogger(); err == nil {
		t.Error("unknown level should fail")
	}
}
