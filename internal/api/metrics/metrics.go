// Package metrics defines the custom Prometheus metrics for the league API.
// It is the single source of truth for metric names, labels and help strings;
// promauto registers everything with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "league"

// SignupsTotal counts successfully registered accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RoleTogglesTotal counts role-toggle requests that reached the policy engine.
// Label:
//   - result: "changed", "noop" or "denied" for policy outcomes, "error" for
//     lost update races and store failures
var RoleTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_toggles_total",
		Help:      "Total number of role toggle requests, labelled by outcome.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens rejected by the guard chain.
// Label:
//   - reason: "missing", "invalid", "no_id", "user_not_found" or "stale"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of bearer tokens rejected, labelled by reason.",
	},
	[]string{"reason"},
)
