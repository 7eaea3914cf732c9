// Package metrics defines and registers all custom Prometheus metrics for the
// sweet shop inventory API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto, so they register with the default Prometheus registry
// at package initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweetshop"

// ── Stock adjustment metrics ──────────────────────────────────────────────────

// PurchasesTotal counts successfully applied purchases.
// Label:
//   - category: the sweet's category at purchase time
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of successfully applied purchases, by category.",
	},
	[]string{"category"},
)

// RestocksTotal counts successfully applied restocks.
// Label:
//   - category: the sweet's category at restock time
var RestocksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restocks_total",
		Help:      "Total number of successfully applied restocks, by category.",
	},
	[]string{"category"},
)

// InsufficientStockTotal counts purchases rejected by the quantity guard.
var InsufficientStockTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insufficient_stock_total",
		Help:      "Total number of purchases rejected because stock was insufficient.",
	},
)

// StockAdjustmentDuration measures the latency of the conditional store update.
// Label:
//   - kind: "purchase" or "restock"
var StockAdjustmentDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stock_adjustment_duration_seconds",
		Help:      "Duration of the atomic stock adjustment store call.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"kind"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// SweetsCreatedTotal counts newly created catalog entries.
// Label:
//   - category: free-text category supplied by the admin
var SweetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweets_created_total",
		Help:      "Total number of sweets created, by category.",
	},
	[]string{"category"},
)

// ── Movement queue metrics ────────────────────────────────────────────────────

// MovementQueueDepth tracks the current number of movements waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MovementQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "movement_queue_depth",
		Help:      "Current number of stock movements pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// MovementErrorsTotal counts movements that failed to persist.
var MovementErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movement_errors_total",
		Help:      "Total number of stock movements that failed to persist.",
	},
)
