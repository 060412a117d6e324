package knot

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors updated by a [Detector]. A nil
// *Metrics records nothing.
type Metrics struct {
	steps         prometheus.Counter
	intersections prometheus.Histogram
	detections    *prometheus.CounterVec
	active        prometheus.Gauge
}

// NewMetrics creates the detector's collectors and registers them with reg.
// If reg is nil, the collectors are created but not registered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "knot_steps_total",
			Help: "Number of simulation steps scanned for knots",
		}),
		intersections: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "knot_intersections_per_step",
			Help:    "Number of intersections found per step",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
		}),
		detections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "knot_detections_total",
			Help: "Number of confirmed knots by knot type",
		}, []string{"kind"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "knot_active_segments",
			Help: "Number of segments still eligible for scanning",
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.steps, m.intersections, m.detections, m.active} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Metrics) observeStep(intersections, active int) {
	if m == nil {
		return
	}
	m.steps.Inc()
	m.intersections.Observe(float64(intersections))
	m.active.Set(float64(active))
}

func (m *Metrics) observeDetection(k Kind) {
	if m == nil {
		return
	}
	m.detections.WithLabelValues(k.String()).Inc()
}
