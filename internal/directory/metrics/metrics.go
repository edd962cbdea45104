package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the directory module.
// Tracks location lookups, jurisdiction imports and featured demotions.
type Metrics struct {
	LookupsTotal      *prometheus.CounterVec
	LookupDuration    prometheus.Histogram
	ImportsTotal      *prometheus.CounterVec
	PeopleImported    prometheus.Counter
	FeaturedDemotions prometheus.Counter
}

// New registers directory metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers directory metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "askthem_location_lookups_total",
			Help: "Officeholder lookups by location, by outcome (matched, no_match, error)",
		}, []string{"outcome"}),
		LookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "askthem_location_lookup_duration_seconds",
			Help:    "Duration of officeholder lookups by location (subtype fan-out)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ImportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "askthem_jurisdiction_imports_total",
			Help: "Jurisdiction imports by outcome (imported, already_loaded, failed)",
		}, []string{"outcome"}),
		PeopleImported: factory.NewCounter(prometheus.CounterOpts{
			Name: "askthem_people_imported_total",
			Help: "Total number of people created by jurisdiction imports",
		}),
		FeaturedDemotions: factory.NewCounter(prometheus.CounterOpts{
			Name: "askthem_featured_demotions_total",
			Help: "Total number of people whose featured flag was cleared",
		}),
	}
}

// ObserveLookup records one lookup. Call with time.Now() at the start of
// the operation.
func (m *Metrics) ObserveLookup(outcome string, start time.Time) {
	m.LookupsTotal.WithLabelValues(outcome).Inc()
	m.LookupDuration.Observe(time.Since(start).Seconds())
}

// IncrementImport records one import attempt.
func (m *Metrics) IncrementImport(outcome string) {
	m.ImportsTotal.WithLabelValues(outcome).Inc()
}

// AddPeopleImported records people created by an import.
func (m *Metrics) AddPeopleImported(n int) {
	if n > 0 {
		m.PeopleImported.Add(float64(n))
	}
}

// AddFeaturedDemotions records people demoted by the featured enforcer.
func (m *Metrics) AddFeaturedDemotions(n int) {
	if n > 0 {
		m.FeaturedDemotions.Add(float64(n))
	}
}
