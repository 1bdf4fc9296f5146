package minter

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/0gfoundation/0g-signature-mint/internal/metrics"
)

// Strategy names accepted by NewIDSource.
const (
	StrategyCounter = "counter"
	StrategyRandom  = "random"
)

// IDSource hands out the unique id for the next voucher. Release gives an id
// back when signing fails after Next succeeded.
type IDSource interface {
	Next(ctx context.Context) (*big.Int, error)
	Release(ctx context.Context, id *big.Int) error
}

// CounterReader exposes the contract's mint counter.
type CounterReader interface {
	NextTokenID(ctx context.Context) (*big.Int, error)
}

// MintChecker reports whether a token id already has an owner.
type MintChecker interface {
	IsMinted(ctx context.Context, id *big.Int) (bool, error)
}

// IDLedger is the part of the ledger both strategies read.
type IDLedger interface {
	CounterReader
	MintChecker
}

// NewIDSource returns the source for strategy.
func NewIDSource(strategy string, ledger IDLedger, res Reserver, maxAttempts int) (IDSource, error) {
	if res == nil {
		res = NopReserver{}
	}
	switch strategy {
	case StrategyCounter, "":
		return &CounterSource{counter: ledger, res: res, maxAttempts: maxAttempts}, nil
	case StrategyRandom:
		return &RandomSource{minted: ledger, res: res, maxAttempts: maxAttempts, rand: rand.Reader}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}

// StrategyWarning is the operator-facing note logged at startup for the
// chosen strategy.
func StrategyWarning(strategy string, reserved bool) string {
	var msg string
	if strategy == StrategyRandom {
		msg = "random token ids: each id is checked against ownerOf before signing, ids do not follow the contract counter"
	} else {
		msg = "counter token ids: ids follow nextTokenId, which reveals issuance order and can be raced by concurrent signers"
	}
	if !reserved {
		msg += "; no redis configured, ids are not reserved across signers"
	}
	return msg
}

// CounterSource reads nextTokenId() and reserves the first free id at or
// after it.
type CounterSource struct {
	counter     CounterReader
	res         Reserver
	maxAttempts int
}

func (s *CounterSource) Next(ctx context.Context) (*big.Int, error) {
	start, err := s.counter.NextTokenID(ctx)
	if err != nil {
		return nil, err
	}
	id := new(big.Int).Set(start)
	for i := 0; i < attempts(s.maxAttempts); i++ {
		ok, err := s.res.Reserve(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			return id, nil
		}
		metrics.IDConflictsTotal.WithLabelValues(StrategyCounter).Inc()
		id = new(big.Int).Add(id, big.NewInt(1))
	}
	return nil, fmt.Errorf("%w after %d attempts from %s", ErrIDExhausted, attempts(s.maxAttempts), start)
}

func (s *CounterSource) Release(ctx context.Context, id *big.Int) error {
	return s.res.Release(ctx, id)
}

var idSpace = new(big.Int).Lsh(big.NewInt(1), 256)

// RandomSource draws 256-bit ids and skips any that are minted or reserved.
type RandomSource struct {
	minted      MintChecker
	res         Reserver
	maxAttempts int
	rand        io.Reader
}

func (s *RandomSource) Next(ctx context.Context) (*big.Int, error) {
	for i := 0; i < attempts(s.maxAttempts); i++ {
		id, err := rand.Int(s.rand, idSpace)
		if err != nil {
			return nil, fmt.Errorf("draw token id: %w", err)
		}
		minted, err := s.minted.IsMinted(ctx, id)
		if err != nil {
			return nil, err
		}
		if minted {
			metrics.IDConflictsTotal.WithLabelValues(StrategyRandom).Inc()
			continue
		}
		ok, err := s.res.Reserve(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			return id, nil
		}
		metrics.IDConflictsTotal.WithLabelValues(StrategyRandom).Inc()
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrIDExhausted, attempts(s.maxAttempts))
}

func (s *RandomSource) Release(ctx context.Context, id *big.Int) error {
	return s.res.Release(ctx, id)
}

func attempts(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
