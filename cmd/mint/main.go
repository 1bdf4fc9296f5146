// cmd/mint drives a SignatureMintNFT contract from the shell: grant roles,
// sign mint vouchers, verify them and redeem them.
//
// Configuration comes from the environment (or config.yaml), see
// internal/config. --contract overrides NFT_CONTRACT.
//
// Usage:
//
//	RPC_URL=http://127.0.0.1:8545 MINTER_PRIVATE_KEY=0x<key> \
//	go run ./cmd/mint/ grant-role --grantee 0x<minter>
//
//	go run ./cmd/mint/ generate-signature \
//	  --contract         0x5FbDB2315678afecb367f032d93F642f64180aa3 \
//	  --recipient        0x<to> \
//	  --uri              ipfs://Qm... \
//	  --price            1.5 \
//	  --payment-receiver 0x<receiver>
//
//	go run ./cmd/mint/ verify-signature [--onchain] [--signer 0x...] '<payload>'
//	go run ./cmd/mint/ redeem '<payload>'
//	go run ./cmd/mint/ status
//
// generate-signature prints the signed voucher string-escaped once so it can
// be pasted as a single shell argument; --raw prints plain JSON. verify and
// redeem accept either form, or "-" to read stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/0gfoundation/0g-signature-mint/internal/bootstrap"
	"github.com/0gfoundation/0g-signature-mint/internal/config"
)

const usage = `usage: mint <command> [flags]

commands:
  grant-role          grant a role (default MINTER_ROLE) to an address
  generate-signature  sign a mint voucher
  verify-signature    check a signed voucher
  redeem              submit a signed voucher to signatureMint
  status              show chain id, minters and the next token id
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	cmd, err := parse(os.Args[1], os.Args[2:], os.Stdin)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fatalf("%v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fatalf("config: %v", err)
	}
	if cmd.contract != "" {
		cfg.Chain.ContractAddress = cmd.contract
	}
	log, err := cfg.Log.NewLogger()
	if err != nil {
		fatalf("%v", err)
	}
	defer log.Sync() //nolint:errcheck

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, 5*time.Minute)
	defer cancelTimeout()

	deps, err := bootstrap.Build(ctx, cfg, log, cmd.needKey)
	if err != nil {
		fatalf("%v", err)
	}
	defer deps.Close()

	if err := cmd.run(ctx, deps.Minter, os.Stdout); err != nil {
		log.Debug("command failed", zap.String("command", os.Args[1]), zap.Error(err))
		deps.Close()
		fatalf("%v", err)
	}
}

// readPayload returns arg, or all of stdin when arg is "-".
func readPayload(arg string, stdin io.Reader) ([]byte, error) {
	if arg != "-" {
		return []byte(arg), nil
	}
	return io.ReadAll(stdin)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
