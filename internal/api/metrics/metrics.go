// Package metrics defines and registers all custom Prometheus metrics for
// the billing API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry via promauto; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "billing"

// ── Entity metrics ────────────────────────────────────────────────────────────

// ClientsCreatedTotal counts successfully created clients.
var ClientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of clients created.",
	},
)

// JobsCreatedTotal counts successfully created jobs.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs created.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts requests rejected by the auth gate or login.
// Label:
//   - reason: "missing_header", "invalid_header", "invalid_token", "bad_credentials"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// ListCacheTotal counts list-cache lookups.
// Labels:
//   - resource: "clientes" or "trabajos"
//   - result: "hit" or "miss"
var ListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_cache_total",
		Help:      "Total number of list-cache lookups, by resource and result.",
	},
	[]string{"resource", "result"},
)

// ── Activity pipeline metrics ─────────────────────────────────────────────────

// ActivitiesProcessedTotal counts audit records persisted by the workers.
// Labels:
//   - entity: "cliente", "trabajo" or "usuario"
//   - action: "create", "update" or "delete"
var ActivitiesProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_processed_total",
		Help:      "Total number of audit records successfully persisted.",
	},
	[]string{"entity", "action"},
)

// ActivitiesErrorsTotal counts audit records that failed to persist.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var ActivitiesErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_errors_total",
		Help:      "Total number of audit records that failed processing.",
	},
	[]string{"reason"},
)

// ActivitiesQueueDepth tracks the number of audit records waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivitiesQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activities_queue_depth",
		Help:      "Current number of audit records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
