// Package metrics defines all custom Prometheus metrics for the blood
// donation API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blooddonation"

// ── Matching metrics ──────────────────────────────────────────────────────────

// DonorsMatchedTotal counts donors returned by the matcher.
// Label:
//   - match_type: "exact" (group+location) or "fallback" (group only)
var DonorsMatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donors_matched_total",
		Help:      "Total number of donors returned by matching, by match type.",
	},
	[]string{"match_type"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsAttemptedTotal counts messages submitted to the mail
// transport. Submission is fire-and-forget; this says nothing about
// delivery.
var NotificationsAttemptedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_attempted_total",
		Help:      "Total number of donor notifications submitted for delivery.",
	},
)

// NotificationsFailedTotal counts per-recipient transport failures.
// Label:
//   - reason: short failure description (e.g. "send_failed", "timeout")
var NotificationsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of donor notifications that failed to send.",
	},
	[]string{"reason"},
)

// NotificationSendDuration measures a single transport send.
var NotificationSendDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_send_duration_seconds",
		Help:      "Duration of a single mail transport send.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Registration metrics ──────────────────────────────────────────────────────

// DonorsRegisteredTotal counts successful donor registrations.
// Label:
//   - blood_group: one of the eight ABO/Rh groups
var DonorsRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donors_registered_total",
		Help:      "Total number of donors registered, by blood group.",
	},
	[]string{"blood_group"},
)

// RequestsRecordedTotal counts recorded blood requests.
// Label:
//   - blood_group: the requested group
var RequestsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_recorded_total",
		Help:      "Total number of blood requests recorded, by blood group.",
	},
	[]string{"blood_group"},
)
