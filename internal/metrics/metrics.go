// Package metrics instruments game event streams with Prometheus metrics.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	gostreams "github.com/deadlyengineer/gamestream"
	"github.com/deadlyengineer/gamestream/gameevent"
)

// Recorder counts the game events flowing through a stream.
type Recorder struct {
	Events          *prometheus.CounterVec
	HighLevelEvents prometheus.Counter
	LastEventID     prometheus.Gauge
}

// NewRecorder creates a Recorder and registers its metrics with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		Events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "datastream_events_total",
			Help: "Total number of game events observed, labelled by action.",
		}, []string{"action"}),

		HighLevelEvents: factory.NewCounter(prometheus.CounterOpts{
			Name: "datastream_high_level_events_total",
			Help: "Total number of game events observed at a high player level.",
		}),

		LastEventID: factory.NewGauge(prometheus.GaugeOpts{
			Name: "datastream_last_event_id",
			Help: "ID of the most recently observed game event.",
		}),
	}
}

// Observe records elem. It can be passed to gostreams.Peek.
func (r *Recorder) Observe(_ context.Context, _ context.CancelCauseFunc, elem gameevent.Event, _ uint64) {
	r.Events.WithLabelValues(elem.Action.String()).Inc()

	if elem.Level >= gameevent.HighLevel {
		r.HighLevelEvents.Inc()
	}

	r.LastEventID.Set(float64(elem.ID))
}

// Instrument returns a producer that records every event produced by prod.
func (r *Recorder) Instrument(prod gostreams.ProducerFunc[gameevent.Event]) gostreams.ProducerFunc[gameevent.Event] {
	return gostreams.Peek(prod, r.Observe)
}
