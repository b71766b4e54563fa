// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chama_rpc_requests_total",
		Help: "Total RPCs processed, labeled by procedure and Connect code",
	}, []string{"procedure", "code"})

	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chama_rpc_duration_seconds",
		Help:    "Latency distribution of unary RPCs",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"procedure"})

	ContributionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chama_contributions_total",
		Help: "Contributions committed to a kitty",
	})

	ContributedAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chama_contributed_amount_total",
		Help: "Sum of committed contribution amounts",
	})

	LoanVotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chama_loan_votes_total",
		Help: "Votes accepted on loans, labeled by ballot",
	}, []string{"vote"})

	LoanResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chama_loan_resolutions_total",
		Help: "Loans that reached a terminal status",
	}, []string{"status"})

	RotationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chama_rotations_total",
		Help: "Merry-go-round advances committed",
	})

	LiveSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chama_live_subscribers",
		Help: "Open live subscriptions across all groups",
	})

	LiveSubscribersLagged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chama_live_subscribers_lagged_total",
		Help: "Subscriptions closed because their buffer was full",
	})

	ReferenceChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chama_reference_checks_total",
		Help: "Reference validity checks, labeled by outcome",
	}, []string{"outcome"})

	PermissionDeniedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chama_permission_denied_total",
		Help: "Writes rejected for lack of permission, labeled by operation",
	}, []string{"operation"})
)
