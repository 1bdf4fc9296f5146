package api

import (
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/0gfoundation/0g-signature-mint/internal/chain"
	"github.com/0gfoundation/0g-signature-mint/internal/minter"
	"github.com/0gfoundation/0g-signature-mint/internal/voucher"
)

// StatusFor maps an error kind to the HTTP status it is reported with, and
// a short kind name clients can switch on.
func StatusFor(err error) (int, string) {
	var (
		price      *voucher.InvalidPriceError
		malformed  *voucher.MalformedPayloadError
		unauthSig  *minter.UnauthorizedSignerError
		stale      *minter.StaleDomainError
		ledgerFail *chain.LedgerRevertError
	)
	switch {
	case errors.As(err, &price):
		return http.StatusBadRequest, "invalid_price"
	case errors.As(err, &malformed):
		return http.StatusBadRequest, "malformed_payload"
	case errors.As(err, &unauthSig):
		return http.StatusForbidden, "unauthorized_signer"
	case errors.As(err, &stale):
		return http.StatusConflict, "stale_domain"
	case errors.As(err, &ledgerFail):
		return http.StatusConflict, "ledger_revert"
	case errors.Is(err, minter.ErrNoSigningContext), errors.Is(err, minter.ErrNoSigningKey), errors.Is(err, chain.ErrReadOnly):
		return http.StatusServiceUnavailable, "no_signing_context"
	case errors.Is(err, minter.ErrIDExhausted):
		return http.StatusServiceUnavailable, "id_exhausted"
	default:
		return http.StatusBadGateway, "ledger_unavailable"
	}
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	status, kind := StatusFor(err)
	body := gin.H{"error": err.Error(), "kind": kind}

	var revert *chain.LedgerRevertError
	if errors.As(err, &revert) {
		body["reason"] = revert.Reason
		if revert.TxHash != (common.Hash{}) {
			body["transactionId"] = revert.TxHash.Hex()
		}
	}
	if status >= http.StatusInternalServerError {
		h.log.Error(op, zap.Error(err))
	} else {
		h.log.Info(op+" rejected", zap.String("kind", kind), zap.Error(err))
	}
	c.JSON(status, body)
}
