package lifecycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opAdd               = "add"
	opMoveToTrash       = "move_to_trash"
	opRestoreFromTrash  = "restore_from_trash"
	opPermanentlyDelete = "permanently_delete"

	resultOK       = "ok"
	resultNoop     = "noop"
	resultNotFound = "not_found"
	resultError    = "error"
)

// metrics holds the counters of lifecycle transitions.
// With a nil registerer the collectors work but are not exported.
type metrics struct {
	operations *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drfriend_lifecycle_operations_total",
				Help: "Total number of record lifecycle operations",
			},
			[]string{"operation", "result"},
		),
	}
}

func (m *metrics) observe(operation, result string) {
	m.operations.WithLabelValues(operation, result).Inc()
}
