package minter

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/0gfoundation/0g-signature-mint/internal/chain"
	"github.com/0gfoundation/0g-signature-mint/internal/keys"
	"github.com/0gfoundation/0g-signature-mint/internal/voucher"
)

const testKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	testChainID  = big.NewInt(1337)
	testContract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
)

func testKey() *keys.Signer {
	s, err := keys.ParseHex(testKeyHex)
	if err != nil {
		panic(err)
	}
	return s
}

func testRequest() voucher.Request {
	return voucher.Request{
		Recipient:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		URI:             "ipfs://QmTest",
		Price:           "1.5",
		PaymentReceiver: "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
	}
}

// fakeLedger behaves like the contract: it checks signatures against the
// minter set, requires the right payment and refuses spent ids.
type fakeLedger struct {
	mu       sync.Mutex
	chainID  *big.Int
	minters  []common.Address
	next     *big.Int
	minted   map[string]bool
	grants   map[[32]byte][]common.Address
	calls    int
	values   []*big.Int
	chainErr error
}

func newFakeLedger(minters ...common.Address) *fakeLedger {
	return &fakeLedger{
		chainID: new(big.Int).Set(testChainID),
		minters: minters,
		next:    big.NewInt(7),
		minted:  map[string]bool{},
		grants:  map[[32]byte][]common.Address{},
	}
}

func (l *fakeLedger) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func (l *fakeLedger) touch() {
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()
}

func (l *fakeLedger) ChainID(context.Context) (*big.Int, error) {
	l.touch()
	if l.chainErr != nil {
		return nil, l.chainErr
	}
	return new(big.Int).Set(l.chainID), nil
}

func (l *fakeLedger) RoleMemberCount(_ context.Context, role [32]byte) (*big.Int, error) {
	l.touch()
	if role != voucher.RoleHash(voucher.MinterRole) {
		return new(big.Int), nil
	}
	return big.NewInt(int64(len(l.minters))), nil
}

func (l *fakeLedger) RoleMember(_ context.Context, _ [32]byte, index *big.Int) (common.Address, error) {
	l.touch()
	i := int(index.Int64())
	if i >= len(l.minters) {
		return common.Address{}, &chain.LedgerRevertError{Reason: "index out of bounds"}
	}
	return l.minters[i], nil
}

func (l *fakeLedger) NextTokenID(context.Context) (*big.Int, error) {
	l.touch()
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.next), nil
}

func (l *fakeLedger) IsMinted(_ context.Context, id *big.Int) (bool, error) {
	l.touch()
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.minted[id.String()], nil
}

func (l *fakeLedger) GrantRole(_ context.Context, role [32]byte, account common.Address) (*chain.Receipt, error) {
	l.touch()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.grants[role] = append(l.grants[role], account)
	if role == voucher.RoleHash(voucher.MinterRole) {
		l.minters = append(l.minters, account)
	}
	return &chain.Receipt{TxHash: randomHash(), Status: 1}, nil
}

func (l *fakeLedger) isMinter(a common.Address) bool {
	for _, m := range l.minters {
		if m == a {
			return true
		}
	}
	return false
}

func (l *fakeLedger) VerifyVoucher(_ context.Context, v *voucher.MintVoucher, sig []byte) (bool, common.Address, error) {
	l.touch()
	signer, err := voucher.Recover(v, sig, voucher.NewDomain(l.chainID, testContract))
	if err != nil {
		return false, common.Address{}, &chain.LedgerRevertError{Reason: "ECDSA: invalid signature"}
	}
	return l.isMinter(signer), signer, nil
}

func (l *fakeLedger) SignatureMint(_ context.Context, v *voucher.MintVoucher, sig []byte, value *big.Int) (*chain.Receipt, error) {
	l.touch()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = append(l.values, new(big.Int).Set(value))

	signer, err := voucher.Recover(v, sig, voucher.NewDomain(l.chainID, testContract))
	if err != nil || !l.isMinter(signer) {
		return nil, &chain.LedgerRevertError{Reason: "Invalid signature"}
	}
	if l.minted[v.UniqueID.String()] {
		return nil, &chain.LedgerRevertError{Reason: "Token already minted"}
	}
	if value.Cmp(voucher.PaymentValue(v)) != 0 {
		return nil, &chain.LedgerRevertError{Reason: "Incorrect payment"}
	}
	l.minted[v.UniqueID.String()] = true
	if v.UniqueID.Cmp(l.next) == 0 {
		l.next = new(big.Int).Add(l.next, big.NewInt(1))
	}
	return &chain.Receipt{
		TxHash:  randomHash(),
		Status:  1,
		TokenID: new(big.Int).Set(v.UniqueID),
	}, nil
}

func randomHash() common.Hash {
	k, _ := crypto.GenerateKey()
	return crypto.Keccak256Hash(crypto.FromECDSA(k))
}

// failingKey is a key holder whose signing always fails.
type failingKey struct{ addr common.Address }

func (k failingKey) Address() common.Address { return k.addr }
func (k failingKey) SignHash([]byte) ([]byte, error) { return nil, errors.New("hsm unavailable") }
