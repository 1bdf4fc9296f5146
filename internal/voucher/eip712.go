package voucher

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Domain name and version agreed with the SignatureMintNFT contract.
const (
	DomainName    = "SignatureMintNFT"
	DomainVersion = "1"
)

var (
	domainTypeHash = crypto.Keccak256Hash([]byte(
		"EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)",
	))
	mintVoucherTypeHash = crypto.Keccak256Hash([]byte(
		"MintVoucher(uint256 tokenId,address to,string uri,uint256 price,address currency,address paymentReceiver)",
	))
)

// Domain scopes a signature to one contract on one chain.
type Domain struct {
	Name              string
	Version           string
	ChainID           *big.Int
	VerifyingContract common.Address
}

// NewDomain returns the signing domain for a contract. chainID must come from
// the live network, never from static configuration.
func NewDomain(chainID *big.Int, contract common.Address) Domain {
	return Domain{
		Name:              DomainName,
		Version:           DomainVersion,
		ChainID:           new(big.Int).Set(chainID),
		VerifyingContract: contract,
	}
}

// DomainSeparator computes the EIP-712 domain separator.
func DomainSeparator(d Domain) [32]byte {
	nameHash := crypto.Keccak256Hash([]byte(d.Name))
	versionHash := crypto.Keccak256Hash([]byte(d.Version))

	// ABI-encode: (bytes32, bytes32, bytes32, uint256, address)
	encoded := make([]byte, 5*32)
	copy(encoded[0:32], domainTypeHash[:])
	copy(encoded[32:64], nameHash[:])
	copy(encoded[64:96], versionHash[:])
	putUint256(encoded[96:128], d.ChainID)
	copy(encoded[140:160], d.VerifyingContract.Bytes()) // addr is right-aligned in 32-byte slot

	return crypto.Keccak256Hash(encoded)
}

// StructHash is keccak256(typeHash || abi.encode(fields)) with the string
// field replaced by its keccak256.
func StructHash(v *MintVoucher) [32]byte {
	uriHash := crypto.Keccak256Hash([]byte(v.URI))

	encoded := make([]byte, 7*32)
	copy(encoded[0:32], mintVoucherTypeHash[:])
	putUint256(encoded[32:64], v.UniqueID)
	copy(encoded[76:96], v.Recipient.Bytes())
	copy(encoded[96:128], uriHash[:])
	putUint256(encoded[128:160], v.Price)
	copy(encoded[172:192], v.Currency.Bytes())
	copy(encoded[204:224], v.PaymentReceiver.Bytes())

	return crypto.Keccak256Hash(encoded)
}

// Digest is keccak256(0x1901 || domainSeparator || structHash), the value
// the contract passes to ecrecover.
func Digest(v *MintVoucher, d Domain) [32]byte {
	sep := DomainSeparator(d)
	structHash := StructHash(v)

	msg := make([]byte, 2+32+32)
	msg[0] = 0x19
	msg[1] = 0x01
	copy(msg[2:34], sep[:])
	copy(msg[34:66], structHash[:])
	return crypto.Keccak256Hash(msg)
}

// nil is encoded as zero.
func putUint256(dst []byte, x *big.Int) {
	if x == nil {
		return
	}
	x.FillBytes(dst)
}

// Sign signs the voucher digest with privKey. V is returned as 27/28 for
// Solidity ecrecover.
func Sign(v *MintVoucher, privKey *ecdsa.PrivateKey, d Domain) ([]byte, error) {
	if err := v.CheckComplete(); err != nil {
		return nil, err
	}
	digest := Digest(v, d)
	sig, err := crypto.Sign(digest[:], privKey)
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}

// Recover returns the address that produced sig over the voucher under d.
func Recover(v *MintVoucher, sig []byte, d Domain) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length %d", len(sig))
	}
	// ecrecover on the contract side only takes V in {27,28}.
	if sig[64] != 27 && sig[64] != 28 {
		return common.Address{}, fmt.Errorf("invalid signature v %d", sig[64])
	}
	digest := Digest(v, d)
	norm := make([]byte, crypto.SignatureLength)
	copy(norm, sig)
	norm[64] -= 27
	r := new(big.Int).SetBytes(norm[:32])
	s := new(big.Int).SetBytes(norm[32:64])
	// The contract rejects high-s signatures, so recovery must too.
	if !crypto.ValidateSignatureValues(norm[64], r, s, true) {
		return common.Address{}, fmt.Errorf("invalid signature values")
	}
	pub, err := crypto.SigToPub(digest[:], norm)
	if err != nil {
		return common.Address{}, fmt.Errorf("ecrecover: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Verify checks that sig over v under d was produced by expected.
func Verify(v *MintVoucher, sig []byte, d Domain, expected common.Address) error {
	recovered, err := Recover(v, sig, d)
	if err != nil {
		return err
	}
	if recovered != expected {
		return &VerificationMismatchError{Expected: expected, Recovered: recovered}
	}
	return nil
}

// CheckComplete reports the first field a signable voucher is missing.
func (v *MintVoucher) CheckComplete() error {
	if v.UniqueID == nil {
		return &MalformedPayloadError{Field: "uniqueId"}
	}
	if v.Price == nil {
		return &MalformedPayloadError{Field: "price"}
	}
	return nil
}
