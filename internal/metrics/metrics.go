package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignaturesTotal counts voucher signing attempts by outcome
	SignaturesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mint_signatures_total",
			Help: "Total number of voucher signing attempts",
		},
		[]string{"status"},
	)

	// VerificationsTotal counts verifications by mode (offchain/onchain) and verdict
	VerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mint_verifications_total",
			Help: "Total number of voucher verifications",
		},
		[]string{"mode", "result"},
	)

	// RedemptionsTotal counts redemption submissions by outcome
	RedemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mint_redemptions_total",
			Help: "Total number of voucher redemptions submitted",
		},
		[]string{"status"},
	)

	// RoleGrantsTotal counts grantRole submissions by outcome
	RoleGrantsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mint_role_grants_total",
			Help: "Total number of role grants submitted",
		},
		[]string{"status"},
	)

	// LedgerCallDuration tracks round-trip time of ledger calls
	LedgerCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mint_ledger_call_duration_seconds",
			Help:    "Ledger call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// IDConflictsTotal counts unique ids skipped because they were reserved or minted
	IDConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mint_id_conflicts_total",
			Help: "Total number of unique ids skipped due to a conflict",
		},
		[]string{"strategy"},
	)
)
