package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"

	"github.com/0gfoundation/0g-signature-mint/internal/chain"
	"github.com/0gfoundation/0g-signature-mint/internal/minter"
	"github.com/0gfoundation/0g-signature-mint/internal/voucher"
)

// service is satisfied by *minter.Minter.
type service interface {
	GrantRole(ctx context.Context, role string, grantee common.Address) (*chain.Receipt, error)
	GenerateSignature(ctx context.Context, req voucher.Request) (*voucher.SignedVoucher, error)
	Verify(ctx context.Context, sv *voucher.SignedVoucher) (*minter.Verification, error)
	VerifyOnChain(ctx context.Context, sv *voucher.SignedVoucher) (*minter.Verification, error)
	Redeem(ctx context.Context, sv *voucher.SignedVoucher) (*chain.Receipt, error)
	Status(ctx context.Context) (*minter.Status, error)
}

// command is a parsed subcommand, ready to run once the minter is built.
type command struct {
	contract string
	needKey  bool
	run      func(ctx context.Context, svc service, out io.Writer) error
}

func parse(name string, args []string, stdin io.Reader) (*command, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	contract := fs.String("contract", "", "SignatureMintNFT address (overrides NFT_CONTRACT)")

	var cmd *command
	switch name {
	case "grant-role":
		role := fs.String("role", voucher.MinterRole, "role name; empty for DEFAULT_ADMIN_ROLE")
		grantee := fs.String("grantee", "", "address receiving the role (required)")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if !common.IsHexAddress(*grantee) {
			return nil, fmt.Errorf("--grantee must be an address, got %q", *grantee)
		}
		cmd = &command{needKey: true, run: grantRole(*role, common.HexToAddress(*grantee))}

	case "generate-signature":
		var req voucher.Request
		fs.StringVar(&req.Recipient, "recipient", "", "address the token is minted to (required)")
		fs.StringVar(&req.URI, "uri", "", "token URI (required)")
		fs.StringVar(&req.Price, "price", "0", "price in whole native units, e.g. 1.5")
		fs.StringVar(&req.PaymentReceiver, "payment-receiver", "", "address paid on redemption (required)")
		fs.StringVar(&req.Currency, "currency", "", "ERC-20 currency address; empty for the native asset")
		raw := fs.Bool("raw", false, "print plain JSON instead of the shell-escaped form")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		cmd = &command{needKey: true, run: generateSignature(req, *raw)}

	case "verify-signature", "redeem":
		payload := fs.String("payload", "", "signed voucher JSON, or - for stdin")
		onchain := false
		var signer string
		if name == "verify-signature" {
			fs.BoolVar(&onchain, "onchain", false, "ask the contract's verify() instead of recovering locally")
			fs.StringVar(&signer, "signer", "", "require the voucher to be signed by this address")
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if signer != "" && !common.IsHexAddress(signer) {
			return nil, fmt.Errorf("--signer must be an address, got %q", signer)
		}
		arg := *payload
		if arg == "" && fs.NArg() > 0 {
			arg = fs.Arg(0)
		}
		if arg == "" {
			return nil, errors.New("a signed voucher payload is required")
		}
		data, err := readPayload(arg, stdin)
		if err != nil {
			return nil, fmt.Errorf("read payload: %w", err)
		}
		sv, err := voucher.DecodeSignedVoucher(data)
		if err != nil {
			return nil, err
		}
		if name == "redeem" {
			cmd = &command{needKey: true, run: redeem(sv)}
		} else {
			cmd = &command{run: verifySignature(sv, onchain, signer)}
		}

	case "status":
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		cmd = &command{run: status}

	default:
		return nil, fmt.Errorf("unknown command %q", name)
	}

	if *contract != "" && !common.IsHexAddress(*contract) {
		return nil, fmt.Errorf("--contract must be an address, got %q", *contract)
	}
	cmd.contract = *contract
	return cmd, nil
}

func grantRole(role string, grantee common.Address) func(context.Context, service, io.Writer) error {
	return func(ctx context.Context, svc service, out io.Writer) error {
		rcpt, err := svc.GrantRole(ctx, role, grantee)
		if err != nil {
			return err
		}
		return printJSON(out, rcpt)
	}
}

func generateSignature(req voucher.Request, raw bool) func(context.Context, service, io.Writer) error {
	return func(ctx context.Context, svc service, out io.Writer) error {
		sv, err := svc.GenerateSignature(ctx, req)
		if err != nil {
			return err
		}
		data, err := json.Marshal(sv)
		if err != nil {
			return err
		}
		if !raw {
			data, err = shellEscape(data)
			if err != nil {
				return err
			}
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
}

func verifySignature(sv *voucher.SignedVoucher, onchain bool, signer string) func(context.Context, service, io.Writer) error {
	return func(ctx context.Context, svc service, out io.Writer) error {
		verify := svc.Verify
		if onchain {
			verify = svc.VerifyOnChain
		}
		ver, err := verify(ctx, sv)
		if err != nil {
			return err
		}
		if signer != "" {
			ver = minter.ExpectSigner(ver, common.HexToAddress(signer))
		}
		return printJSON(out, ver)
	}
}

func redeem(sv *voucher.SignedVoucher) func(context.Context, service, io.Writer) error {
	return func(ctx context.Context, svc service, out io.Writer) error {
		rcpt, err := svc.Redeem(ctx, sv)
		if err != nil {
			return err
		}
		return printJSON(out, rcpt)
	}
}

func status(ctx context.Context, svc service, out io.Writer) error {
	st, err := svc.Status(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, st)
}

// shellEscape encodes data once more as a JSON string. The result is a
// single shell word when quoted, and decodes back with DecodeSignedVoucher.
func shellEscape(data []byte) ([]byte, error) {
	return json.Marshal(string(data))
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
