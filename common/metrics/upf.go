package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UPF-specific metrics
var (
	// Session metrics
	UPFActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "upf_active_sessions",
			Help: "Number of active UPF sessions",
		},
	)

	// PFCP metrics (UPF side - server)
	UPFPFCPSessionEstablishments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upf_pfcp_session_establishments_total",
			Help: "Total number of PFCP session establishments",
		},
		[]string{"result"},
	)

	UPFPFCPMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upf_pfcp_messages_total",
			Help: "Total number of PFCP messages",
		},
		[]string{"type"},
	)
)

// SetUPFActiveSessions sets the number of active sessions
func SetUPFActiveSessions(count int) {
	UPFActiveSessions.Set(float64(count))
}

// RecordUPFPFCPSessionEstablishment records a PFCP session establishment
func RecordUPFPFCPSessionEstablishment(result string) {
	UPFPFCPSessionEstablishments.WithLabelValues(result).Inc()
}

// RecordUPFPFCPMessage records a PFCP message
func RecordUPFPFCPMessage(msgType string) {
	UPFPFCPMessages.WithLabelValues(msgType).Inc()
}
