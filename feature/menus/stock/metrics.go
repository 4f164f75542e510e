package stock

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultApplied  = "applied"
	resultDeclined = "declined"
	resultFailed   = "failed"
)

// adjustmentsTotal counts stock adjustments.
// Labels: result (applied, declined, failed)
var adjustmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "menu",
	Subsystem: "stock",
	Name:      "adjustments_total",
	Help:      "Total stock adjustments by result",
}, []string{"result"})
