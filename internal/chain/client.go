package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/0gfoundation/0g-signature-mint/internal/voucher"
)

// ErrReadOnly is returned by mutating calls on a client built without a
// sender key.
var ErrReadOnly = errors.New("chain client has no sender key")

// Backend is everything the client needs from a node connection.
// *ethclient.Client and the simulated backend's client both satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Receipt is the confirmation returned for a mined ledger submission.
type Receipt struct {
	TxHash      common.Hash `json:"transactionId"`
	Status      uint64      `json:"status"`
	BlockNumber uint64      `json:"blockNumber"`
	// TokenID is set for redemptions, taken from the Transfer log.
	TokenID *big.Int `json:"tokenId,omitempty"`
}

// Client wraps go-ethereum and the generated SignatureMintNFT binding.
type Client struct {
	eth          Backend
	contract     *SignatureMintNFT
	contractAddr common.Address
	senderKey    *ecdsa.PrivateKey
	closer       func()
}

// NewClient dials rpcURL and binds the contract. key signs grant and redeem
// transactions; pass nil for a read-only client.
func NewClient(ctx context.Context, rpcURL string, contract common.Address, key *ecdsa.PrivateKey) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	c, err := NewClientWithBackend(eth, contract, key)
	if err != nil {
		eth.Close()
		return nil, err
	}
	c.closer = eth.Close
	return c, nil
}

func NewClientWithBackend(eth Backend, contract common.Address, key *ecdsa.PrivateKey) (*Client, error) {
	binding, err := NewSignatureMintNFT(contract, eth)
	if err != nil {
		return nil, fmt.Errorf("bind contract: %w", err)
	}
	return &Client{
		eth:          eth,
		contract:     binding,
		contractAddr: contract,
		senderKey:    key,
	}, nil
}

// Close releases the RPC connection if the client dialed it.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// ChainID asks the node for its chain id. It is never cached so a signature
// cannot be produced for a chain the endpoint has moved away from.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("eth_chainId: %w", err)
	}
	return id, nil
}

// ContractAddress returns the SignatureMintNFT address.
func (c *Client) ContractAddress() common.Address { return c.contractAddr }

// Sender returns the address that pays for transactions, or the zero address
// for a read-only client.
func (c *Client) Sender() common.Address {
	if c.senderKey == nil {
		return common.Address{}
	}
	return crypto.PubkeyToAddress(c.senderKey.PublicKey)
}

func (c *Client) RoleMemberCount(ctx context.Context, role [32]byte) (*big.Int, error) {
	n, err := c.contract.GetRoleMemberCount(&bind.CallOpts{Context: ctx}, role)
	if err != nil {
		return nil, fmt.Errorf("getRoleMemberCount: %w", err)
	}
	return n, nil
}

func (c *Client) RoleMember(ctx context.Context, role [32]byte, index *big.Int) (common.Address, error) {
	addr, err := c.contract.GetRoleMember(&bind.CallOpts{Context: ctx}, role, index)
	if err != nil {
		return common.Address{}, fmt.Errorf("getRoleMember(%s): %w", index, err)
	}
	return addr, nil
}

func (c *Client) HasRole(ctx context.Context, role [32]byte, account common.Address) (bool, error) {
	ok, err := c.contract.HasRole(&bind.CallOpts{Context: ctx}, role, account)
	if err != nil {
		return false, fmt.Errorf("hasRole: %w", err)
	}
	return ok, nil
}

// NextTokenID reads the contract's mint counter.
func (c *Client) NextTokenID(ctx context.Context) (*big.Int, error) {
	id, err := c.contract.NextTokenId(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, fmt.Errorf("nextTokenId: %w", err)
	}
	return id, nil
}

// IsMinted reports whether id already has an owner. ownerOf reverts for
// unknown tokens, which reads as "not minted".
func (c *Client) IsMinted(ctx context.Context, id *big.Int) (bool, error) {
	_, err := c.contract.OwnerOf(&bind.CallOpts{Context: ctx}, id)
	if err == nil {
		return true, nil
	}
	if _, reverted := RevertReason(err); reverted {
		return false, nil
	}
	return false, fmt.Errorf("ownerOf: %w", err)
}

// VerifyVoucher runs the contract's own verify view and returns its verdict
// and the signer it recovered.
func (c *Client) VerifyVoucher(ctx context.Context, v *voucher.MintVoucher, sig []byte) (bool, common.Address, error) {
	out, err := c.contract.Verify(&bind.CallOpts{Context: ctx}, toContractVoucher(v), sig)
	if err != nil {
		if reason, ok := RevertReason(err); ok {
			return false, common.Address{}, &LedgerRevertError{Reason: reason, Err: err}
		}
		return false, common.Address{}, fmt.Errorf("verify: %w", err)
	}
	return out.Success, out.Signer, nil
}

// GrantRole submits grantRole(role, account) and waits for it to be mined.
func (c *Client) GrantRole(ctx context.Context, role [32]byte, account common.Address) (*Receipt, error) {
	return c.send(ctx, "grantRole", nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.GrantRole(opts, role, account)
	})
}

// SignatureMint submits signatureMint(voucher, sig) carrying value and waits
// for it to be mined.
func (c *Client) SignatureMint(ctx context.Context, v *voucher.MintVoucher, sig []byte, value *big.Int) (*Receipt, error) {
	return c.send(ctx, "signatureMint", value, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.SignatureMint(opts, toContractVoucher(v), sig)
	})
}

// transactOpts builds a *bind.TransactOpts signed by the sender key for the
// chain the node currently reports.
func (c *Client) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.senderKey == nil {
		return nil, ErrReadOnly
	}
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	auth, err := bind.NewKeyedTransactorWithChainID(c.senderKey, chainID)
	if err != nil {
		return nil, err
	}
	auth.Context = ctx
	return auth, nil
}

func (c *Client) send(ctx context.Context, method string, value *big.Int, submit func(*bind.TransactOpts) (*types.Transaction, error)) (*Receipt, error) {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("build tx opts: %w", err)
	}
	if value != nil && value.Sign() > 0 {
		opts.Value = new(big.Int).Set(value)
	}

	// Gas estimation executes the call, so most rejections surface here.
	tx, err := submit(opts)
	if err != nil {
		if reason, ok := RevertReason(err); ok {
			return nil, &LedgerRevertError{Reason: reason, Err: err}
		}
		return nil, fmt.Errorf("%s tx: %w", method, err)
	}

	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return nil, fmt.Errorf("wait mined: %w", err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return nil, &LedgerRevertError{
			Reason: c.replayRevert(ctx, tx, receipt.BlockNumber),
			TxHash: tx.Hash(),
		}
	}

	out := &Receipt{
		TxHash:      tx.Hash(),
		Status:      receipt.Status,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}
	out.TokenID = c.mintedTokenID(receipt)
	return out, nil
}

// replayRevert re-executes a failed transaction against the parent block to
// recover the revert reason the receipt does not carry.
func (c *Client) replayRevert(ctx context.Context, tx *types.Transaction, block *big.Int) string {
	msg := ethereum.CallMsg{
		From:  c.Sender(),
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}
	var at *big.Int
	if block != nil && block.Sign() > 0 {
		at = new(big.Int).Sub(block, big.NewInt(1))
	}
	_, err := c.eth.CallContract(ctx, msg, at)
	if err == nil {
		return "execution reverted"
	}
	if reason, ok := RevertReason(err); ok {
		return reason
	}
	return err.Error()
}

// mintedTokenID returns the tokenId of the first Transfer from the zero
// address emitted by the contract, or nil.
func (c *Client) mintedTokenID(receipt *types.Receipt) *big.Int {
	for _, lg := range receipt.Logs {
		if lg == nil || lg.Address != c.contractAddr {
			continue
		}
		ev, err := c.contract.ParseTransfer(*lg)
		if err != nil {
			continue
		}
		if ev.From == (common.Address{}) {
			return ev.TokenId
		}
	}
	return nil
}

// toContractVoucher converts a voucher to the ABI-generated struct.
func toContractVoucher(v *voucher.MintVoucher) SignatureMintNFTMintVoucher {
	return SignatureMintNFTMintVoucher{
		TokenId:         orZero(v.UniqueID),
		To:              v.Recipient,
		Uri:             v.URI,
		Price:           orZero(v.Price),
		Currency:        v.Currency,
		PaymentReceiver: v.PaymentReceiver,
	}
}

func orZero(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return x
}
