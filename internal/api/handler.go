// Package api exposes the minter over HTTP.
package api

import (
	"context"
	"io"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/0gfoundation/0g-signature-mint/internal/auth"
	"github.com/0gfoundation/0g-signature-mint/internal/chain"
	"github.com/0gfoundation/0g-signature-mint/internal/minter"
	"github.com/0gfoundation/0g-signature-mint/internal/voucher"
)

// Signed actions expected in X-Signed-Message for each gated route.
const (
	ActionGrantRole         = "grant-role"
	ActionGenerateSignature = "generate-signature"
	ActionRedeem            = "redeem"
)

// Service is satisfied by *minter.Minter.
// Decoupled here so handler tests can use a mock.
type Service interface {
	GrantRole(ctx context.Context, role string, grantee common.Address) (*chain.Receipt, error)
	GenerateSignature(ctx context.Context, req voucher.Request) (*voucher.SignedVoucher, error)
	Verify(ctx context.Context, sv *voucher.SignedVoucher) (*minter.Verification, error)
	VerifyOnChain(ctx context.Context, sv *voucher.SignedVoucher) (*minter.Verification, error)
	Redeem(ctx context.Context, sv *voucher.SignedVoucher) (*chain.Receipt, error)
	Status(ctx context.Context) (*minter.Status, error)
}

type Handler struct {
	svc Service
	log *zap.Logger
}

func NewHandler(svc Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the routes. Mutating routes go through gate (wallet auth)
// followed by an action check; verification is open. A nil gate mounts
// everything unauthenticated.
func (h *Handler) Register(rg *gin.RouterGroup, gate gin.HandlerFunc) {
	guarded := func(action string, handler gin.HandlerFunc) []gin.HandlerFunc {
		if gate == nil {
			return []gin.HandlerFunc{handler}
		}
		return []gin.HandlerFunc{gate, auth.RequireAction(action), handler}
	}

	rg.POST("/roles/grant", guarded(ActionGrantRole, h.handleGrantRole)...)
	rg.POST("/vouchers", guarded(ActionGenerateSignature, h.handleGenerate)...)
	rg.POST("/vouchers/redeem", guarded(ActionRedeem, h.handleRedeem)...)
	h.RegisterPublic(rg)
}

// RegisterPublic mounts only the read-only routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/status", h.handleStatus)
	rg.POST("/vouchers/verify", h.handleVerify)
}

type grantRequest struct {
	// Role name; empty means DEFAULT_ADMIN_ROLE.
	Role    string `json:"role"`
	Grantee string `json:"grantee" binding:"required"`
}

func (h *Handler) handleGrantRole(c *gin.Context) {
	var req grantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !common.IsHexAddress(req.Grantee) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grantee is not an address"})
		return
	}
	rcpt, err := h.svc.GrantRole(c.Request.Context(), req.Role, common.HexToAddress(req.Grantee))
	if err != nil {
		h.fail(c, "grant role", err)
		return
	}
	c.JSON(http.StatusOK, rcpt)
}

func (h *Handler) handleGenerate(c *gin.Context) {
	var req voucher.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	sv, err := h.svc.GenerateSignature(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "generate signature", err)
		return
	}
	c.JSON(http.StatusCreated, sv)
}

// handleVerify verifies off-chain, or through the contract with ?onchain=true.
// ?signer=0x.. additionally requires that exact signer.
func (h *Handler) handleVerify(c *gin.Context) {
	expected := c.Query("signer")
	if expected != "" && !common.IsHexAddress(expected) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "signer is not an address", "kind": "malformed_payload"})
		return
	}
	sv, ok := h.readVoucher(c)
	if !ok {
		return
	}
	verify := h.svc.Verify
	if c.Query("onchain") == "true" {
		verify = h.svc.VerifyOnChain
	}
	ver, err := verify(c.Request.Context(), sv)
	if err != nil {
		h.fail(c, "verify voucher", err)
		return
	}
	if expected != "" {
		ver = minter.ExpectSigner(ver, common.HexToAddress(expected))
	}
	c.JSON(http.StatusOK, ver)
}

func (h *Handler) handleRedeem(c *gin.Context) {
	sv, ok := h.readVoucher(c)
	if !ok {
		return
	}
	rcpt, err := h.svc.Redeem(c.Request.Context(), sv)
	if err != nil {
		h.fail(c, "redeem voucher", err)
		return
	}
	c.JSON(http.StatusOK, rcpt)
}

func (h *Handler) handleStatus(c *gin.Context) {
	st, err := h.svc.Status(c.Request.Context())
	if err != nil {
		h.fail(c, "read status", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) readVoucher(c *gin.Context) (*voucher.SignedVoucher, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read body"})
		return nil, false
	}
	sv, err := voucher.DecodeSignedVoucher(body)
	if err != nil {
		h.fail(c, "decode voucher", err)
		return nil, false
	}
	return sv, true
}
