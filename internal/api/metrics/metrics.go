// Package metrics defines and registers all custom Prometheus metrics for the
// contacts API. It is the single source of truth for metric names, labels,
// and help strings; registration happens with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contacts"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "incorrect_login", "not_confirmed", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts issued tokens by scope (access, refresh,
// email_confirm).
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of tokens issued, labelled by scope.",
	},
	[]string{"scope"},
)

// ConfirmationEmailsTotal counts confirmation-email outcomes.
// Label:
//   - result: "sent", "failed", or "dropped" (queue full)
var ConfirmationEmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "confirmation_emails_total",
		Help:      "Total number of confirmation emails, labelled by result.",
	},
	[]string{"result"},
)

// MailQueueDepth tracks the number of emails waiting in the dispatcher queue.
var MailQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of emails pending in the dispatcher queue.",
	},
)

// RateLimitRejectedTotal counts requests rejected by the per-address limiter.
// Label:
//   - path: the route pattern that rejected the request
var RateLimitRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejected_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"path"},
)
