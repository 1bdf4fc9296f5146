// Package minter sequences the signing and redemption of mint vouchers against
// one SignatureMintNFT contract.
package minter

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/0gfoundation/0g-signature-mint/internal/chain"
	"github.com/0gfoundation/0g-signature-mint/internal/metrics"
	"github.com/0gfoundation/0g-signature-mint/internal/voucher"
)

// Ledger is the contract surface the minter drives. *chain.Client implements it.
type Ledger interface {
	Network
	RoleRegistry
	IDLedger
	GrantRole(ctx context.Context, role [32]byte, account common.Address) (*chain.Receipt, error)
	VerifyVoucher(ctx context.Context, v *voucher.MintVoucher, sig []byte) (bool, common.Address, error)
	SignatureMint(ctx context.Context, v *voucher.MintVoucher, sig []byte, value *big.Int) (*chain.Receipt, error)
}

// Verification is the verdict on a signed voucher.
type Verification struct {
	Valid  bool           `json:"valid"`
	Signer common.Address `json:"signer"`
	Reason string         `json:"reason,omitempty"`
}

// Minter is bound to one contract and one signing key.
type Minter struct {
	ledger   Ledger
	contract common.Address
	signer   *Signer
	ids      IDSource
	log      *zap.Logger
}

// New builds a Minter. key may be nil for a minter that only verifies and
// redeems. A nil ids falls back to the contract counter without reservation.
func New(ledger Ledger, contract common.Address, key KeyHolder, ids IDSource, log *zap.Logger) *Minter {
	if ids == nil {
		ids = &CounterSource{counter: ledger, res: NopReserver{}, maxAttempts: 1}
	}
	m := &Minter{
		ledger:   ledger,
		contract: contract,
		ids:      ids,
		log:      log,
	}
	if key != nil {
		m.signer = NewSigner(ledger, key)
	}
	return m
}

// Contract returns the bound contract address.
func (m *Minter) Contract() common.Address { return m.contract }

// GrantRole grants role (by name) to grantee.
func (m *Minter) GrantRole(ctx context.Context, role string, grantee common.Address) (*chain.Receipt, error) {
	defer observe("grantRole")()
	rcpt, err := m.ledger.GrantRole(ctx, voucher.RoleHash(role), grantee)
	if err != nil {
		metrics.RoleGrantsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("grant %s: %w", role, err)
	}
	metrics.RoleGrantsTotal.WithLabelValues("success").Inc()
	m.log.Info("role granted",
		zap.String("role", role),
		zap.String("grantee", grantee.Hex()),
		zap.String("tx", rcpt.TxHash.Hex()),
	)
	return rcpt, nil
}

// GenerateSignature canonicalizes req, checks the key holds MINTER_ROLE,
// obtains a fresh token id and signs the voucher under the live domain.
func (m *Minter) GenerateSignature(ctx context.Context, req voucher.Request) (*voucher.SignedVoucher, error) {
	sv, err := m.generate(ctx, req)
	if err != nil {
		metrics.SignaturesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.SignaturesTotal.WithLabelValues("success").Inc()
	m.log.Info("voucher signed",
		zap.String("tokenId", sv.Voucher.UniqueID.String()),
		zap.String("recipient", sv.Voucher.Recipient.Hex()),
		zap.String("price", voucher.FormatPrice(sv.Voucher.Price)),
	)
	return sv, nil
}

func (m *Minter) generate(ctx context.Context, req voucher.Request) (*voucher.SignedVoucher, error) {
	base, err := voucher.Canonicalize(req)
	if err != nil {
		return nil, err
	}
	if m.signer == nil {
		return nil, ErrNoSigningKey
	}
	if err := m.checkMinter(ctx, m.signer.Address()); err != nil {
		return nil, err
	}
	d, err := m.signer.Domain(ctx, m.contract)
	if err != nil {
		return nil, fmt.Errorf("compose domain: %w", err)
	}

	id, err := m.nextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtain token id: %w", err)
	}
	sv, err := m.signer.Sign(ctx, d, base.WithID(id))
	if err != nil {
		if rerr := m.ids.Release(ctx, id); rerr != nil {
			m.log.Warn("release token id", zap.String("tokenId", id.String()), zap.Error(rerr))
		}
		return nil, err
	}
	return sv, nil
}

// Verify recovers the signer off-chain under the live domain and checks it
// currently holds MINTER_ROLE. It does not know whether the id was redeemed.
func (m *Minter) Verify(ctx context.Context, sv *voucher.SignedVoucher) (*Verification, error) {
	d, err := m.domain(ctx)
	if err != nil {
		return nil, err
	}
	out := &Verification{}
	signer, err := voucher.Recover(&sv.Voucher, sv.Signature, d)
	if err != nil {
		out.Reason = err.Error()
		return m.verdict("offchain", out), nil
	}
	out.Signer = signer

	err = m.checkMinter(ctx, signer)
	var unauthorized *UnauthorizedSignerError
	switch {
	case errors.As(err, &unauthorized):
		out.Reason = err.Error()
	case err != nil:
		return nil, err
	default:
		out.Valid = true
	}
	return m.verdict("offchain", out), nil
}

// ExpectSigner narrows a positive verdict to vouchers signed by expected.
// Any other recovered signer turns it negative with a mismatch reason.
func ExpectSigner(ver *Verification, expected common.Address) *Verification {
	if ver == nil || !ver.Valid || ver.Signer == expected {
		return ver
	}
	out := *ver
	out.Valid = false
	out.Reason = (&voucher.VerificationMismatchError{Expected: expected, Recovered: ver.Signer}).Error()
	return &out
}

// VerifyOnChain asks the contract's own verify view.
func (m *Minter) VerifyOnChain(ctx context.Context, sv *voucher.SignedVoucher) (*Verification, error) {
	stop := observe("verify")
	ok, signer, err := m.ledger.VerifyVoucher(ctx, &sv.Voucher, sv.Signature)
	stop()
	out := &Verification{Valid: ok, Signer: signer}
	var revert *chain.LedgerRevertError
	switch {
	case errors.As(err, &revert):
		out.Reason = revert.Reason
	case err != nil:
		return nil, err
	case !ok:
		out.Reason = fmt.Sprintf("signer %s does not hold %s", signer.Hex(), voucher.MinterRole)
	}
	return m.verdict("onchain", out), nil
}

// Redeem submits the voucher to signatureMint, attaching the price as value for
// native-currency vouchers, and waits for it to be mined.
func (m *Minter) Redeem(ctx context.Context, sv *voucher.SignedVoucher) (*chain.Receipt, error) {
	value := voucher.PaymentValue(&sv.Voucher)

	stop := observe("signatureMint")
	rcpt, err := m.ledger.SignatureMint(ctx, &sv.Voucher, sv.Signature, value)
	stop()
	if err != nil {
		metrics.RedemptionsTotal.WithLabelValues("error").Inc()
		m.log.Error("redeem voucher", zap.Stringer("tokenId", sv.Voucher.UniqueID), zap.Error(err))
		return nil, err
	}
	metrics.RedemptionsTotal.WithLabelValues("success").Inc()
	m.log.Info("voucher redeemed",
		zap.Stringer("tokenId", sv.Voucher.UniqueID),
		zap.String("value", value.String()),
		zap.String("tx", rcpt.TxHash.Hex()),
	)
	return rcpt, nil
}

func (m *Minter) domain(ctx context.Context) (voucher.Domain, error) {
	chainID, err := m.ledger.ChainID(ctx)
	if err != nil {
		return voucher.Domain{}, err
	}
	return voucher.NewDomain(chainID, m.contract), nil
}

func (m *Minter) checkMinter(ctx context.Context, candidate common.Address) error {
	defer observe("roleMembers")()
	return CheckMinter(ctx, m.ledger, voucher.MinterRole, candidate)
}

func (m *Minter) nextID(ctx context.Context) (*big.Int, error) {
	defer observe("nextTokenId")()
	return m.ids.Next(ctx)
}

func (m *Minter) verdict(mode string, v *Verification) *Verification {
	result := "invalid"
	if v.Valid {
		result = "valid"
	}
	metrics.VerificationsTotal.WithLabelValues(mode, result).Inc()
	m.log.Debug("voucher verified",
		zap.String("mode", mode),
		zap.Bool("valid", v.Valid),
		zap.String("signer", v.Signer.Hex()),
	)
	return v
}

func observe(method string) func() {
	start := time.Now()
	return func() {
		metrics.LedgerCallDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
}
