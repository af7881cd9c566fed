// Package metrics defines and registers all custom Prometheus metrics for
// the marketplace client. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at package init; the stub
// server exposes them on /metrics, and embedding applications may mount
// promhttp themselves.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketclient"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected", or "error" (transport failure)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts persisted-token validations performed
// during session initialize and refresh.
// Label:
//   - result: "valid" or "invalid" (rejections and transport failures
//     both fail closed and count as invalid)
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, by result.",
	},
	[]string{"result"},
)

// LanguageUpdatesTotal counts language preference updates.
// Label:
//   - result: "success" or "error"
var LanguageUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "language_updates_total",
		Help:      "Total number of language preference updates, by result.",
	},
	[]string{"result"},
)

// RouteTransitionsTotal counts route resolver transitions.
// Labels:
//   - kind: "navigate", "replace", or "history" (external back/forward)
//   - route: the resulting route name
var RouteTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_transitions_total",
		Help:      "Total number of route transitions, by kind and resulting route.",
	},
	[]string{"kind", "route"},
)
