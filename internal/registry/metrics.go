package registry

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess          = "success"
	outcomeActivityNotFound = "activity_not_found"
	outcomeAlreadySignedUp  = "already_signed_up"
	outcomeStudentNotFound  = "student_not_found"
	outcomeFull             = "full"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_directory",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of signup attempts grouped by outcome.",
	}, []string{"outcome"})

	withdrawalCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_directory",
		Subsystem: "registry",
		Name:      "withdrawals_total",
		Help:      "Number of unregister attempts grouped by outcome.",
	}, []string{"outcome"})

	rosterGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_directory",
		Subsystem: "registry",
		Name:      "roster_size",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, withdrawalCounter, rosterGauge)
}

func recordSignup(outcome string) {
	signupCounter.WithLabelValues(outcome).Inc()
}

func recordWithdrawal(outcome string) {
	withdrawalCounter.WithLabelValues(outcome).Inc()
}

func setRosterSize(activity string, size int) {
	rosterGauge.WithLabelValues(activity).Set(float64(size))
}
