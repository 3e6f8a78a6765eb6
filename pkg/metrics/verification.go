package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// VerificationMetrics records officer decisions and college submissions.
type VerificationMetrics struct {
	actions     *prometheus.CounterVec
	conflicts   prometheus.Counter
	submissions *prometheus.CounterVec
	actDuration *prometheus.HistogramVec
}

// NewVerificationMetrics registers the verification metrics on the provided registerer.
func NewVerificationMetrics(reg prometheus.Registerer) *VerificationMetrics {
	if reg == nil {
		return &VerificationMetrics{}
	}
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "verification_actions_total",
		Help: "Officer verification actions by action and outcome.",
	}, []string{"action", "outcome"})
	conflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verification_state_conflicts_total",
		Help: "Verification actions lost to a concurrent state change.",
	})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "college_submissions_total",
		Help: "College data submissions by outcome.",
	}, []string{"outcome"})
	actDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "verification_action_duration_seconds",
		Help:    "Duration of verification transactions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})
	reg.MustRegister(actions, conflicts, submissions, actDuration)
	return &VerificationMetrics{
		actions:     actions,
		conflicts:   conflicts,
		submissions: submissions,
		actDuration: actDuration,
	}
}

// IncAction increments the action counter for the given action/outcome pair.
func (v *VerificationMetrics) IncAction(action, outcome string) {
	if v == nil || v.actions == nil {
		return
	}
	v.actions.WithLabelValues(normalizeLabel(action), normalizeLabel(outcome)).Inc()
}

// IncStateConflict counts an action rejected by the optimistic state check.
func (v *VerificationMetrics) IncStateConflict() {
	if v == nil || v.conflicts == nil {
		return
	}
	v.conflicts.Inc()
}

// IncSubmission increments the submission counter for the given outcome.
func (v *VerificationMetrics) IncSubmission(outcome string) {
	if v == nil || v.submissions == nil {
		return
	}
	v.submissions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveActionDuration records how long the named action transaction took.
func (v *VerificationMetrics) ObserveActionDuration(action string, duration time.Duration) {
	if v == nil || v.actDuration == nil {
		return
	}
	v.actDuration.WithLabelValues(normalizeLabel(action)).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
