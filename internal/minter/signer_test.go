package minter

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0gfoundation/0g-signature-mint/internal/chain"
	"github.com/0gfoundation/0g-signature-mint/internal/voucher"
)

func testVoucher() *voucher.MintVoucher {
	v, err := voucher.Canonicalize(testRequest())
	if err != nil {
		panic(err)
	}
	return v.WithID(big.NewInt(7))
}

func TestSigner_Sign(t *testing.T) {
	ctx := context.Background()
	key := testKey()
	s := NewSigner(newFakeLedger(), key)

	d, err := s.Domain(ctx, testContract)
	require.NoError(t, err)
	sv, err := s.Sign(ctx, d, testVoucher())
	require.NoError(t, err)

	require.Len(t, sv.Signature, 65)
	require.NoError(t, voucher.Verify(&sv.Voucher, sv.Signature, d, key.Address()))
}

func TestSigner_NoSigningContext(t *testing.T) {
	d := voucher.NewDomain(testChainID, testContract)

	_, err := NewSigner(nil, testKey()).Sign(context.Background(), d, testVoucher())
	assert.ErrorIs(t, err, ErrNoSigningContext)

	var nilSigner *Signer
	_, err = nilSigner.Sign(context.Background(), d, testVoucher())
	assert.ErrorIs(t, err, ErrNoSigningContext)

	_, err = nilSigner.Domain(context.Background(), testContract)
	assert.ErrorIs(t, err, ErrNoSigningContext)
}

func TestSigner_StaleDomain(t *testing.T) {
	s := NewSigner(newFakeLedger(), testKey())
	d := voucher.NewDomain(big.NewInt(1), testContract)

	_, err := s.Sign(context.Background(), d, testVoucher())
	var stale *StaleDomainError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, int64(1), stale.Domain.Int64())
	assert.Equal(t, testChainID.Int64(), stale.Live.Int64())
}

func TestSigner_IncompleteVoucher(t *testing.T) {
	ctx := context.Background()
	s := NewSigner(newFakeLedger(), testKey())
	d, err := s.Domain(ctx, testContract)
	require.NoError(t, err)

	v := testVoucher()
	v.UniqueID = nil
	_, err = s.Sign(ctx, d, v)
	var mp *voucher.MalformedPayloadError
	require.ErrorAs(t, err, &mp)
	assert.Equal(t, "uniqueId", mp.Field)
}

func TestSigner_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewSigner(newFakeLedger(), testKey())
	d, err := s.Domain(ctx, testContract)
	require.NoError(t, err)

	v := testVoucher()
	sv, err := s.Sign(ctx, d, v)
	require.NoError(t, err)
	v.UniqueID.SetInt64(99)
	v.Recipient = common.Address{}
	assert.Equal(t, int64(7), sv.Voucher.UniqueID.Int64())
}

func TestCheckMinter(t *testing.T) {
	a := common.HexToAddress("0x0000000000000000000000000000000000000001")
	b := common.HexToAddress("0x0000000000000000000000000000000000000002")
	c := common.HexToAddress("0x0000000000000000000000000000000000000003")
	ledger := newFakeLedger(a, b, c)

	require.NoError(t, CheckMinter(context.Background(), ledger, voucher.MinterRole, c))

	stranger := common.HexToAddress("0x0000000000000000000000000000000000000004")
	err := CheckMinter(context.Background(), ledger, voucher.MinterRole, stranger)
	var unauthorized *UnauthorizedSignerError
	require.ErrorAs(t, err, &unauthorized)
	assert.Equal(t, stranger, unauthorized.Signer)

	// Other roles have no members in the fake.
	err = CheckMinter(context.Background(), ledger, "BURNER_ROLE", a)
	require.ErrorAs(t, err, &unauthorized)
}

// hugeRegistry reports an absurd member count and a single member.
type hugeRegistry struct{ member common.Address }

func (r hugeRegistry) RoleMemberCount(context.Context, [32]byte) (*big.Int, error) {
	return new(big.Int).Lsh(big.NewInt(1), 255), nil
}

func (r hugeRegistry) RoleMember(_ context.Context, _ [32]byte, index *big.Int) (common.Address, error) {
	if index.Sign() > 0 {
		return common.Address{}, &chain.LedgerRevertError{Reason: "index out of bounds"}
	}
	return r.member, nil
}

func TestRoleMembers_HugeCount(t *testing.T) {
	reg := hugeRegistry{member: common.HexToAddress("0x0000000000000000000000000000000000000001")}

	var members []common.Address
	var err error
	require.NotPanics(t, func() {
		members, err = RoleMembers(context.Background(), reg, voucher.MinterRole)
	})
	var revert *chain.LedgerRevertError
	require.ErrorAs(t, err, &revert)
	assert.Nil(t, members)
}
