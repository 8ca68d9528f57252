package dsmga2

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are purely observational counters/histograms a caller can scrape
// alongside a long-running sweep; nothing in the core reads them back, so
// a process that never registers a Prometheus handler pays no real cost
// beyond the label lookups below.
var (
	runsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dsmga2",
		Name:      "runs_total",
		Help:      "Total number of completed runs, labeled by termination reason.",
	}, []string{"terminated_why", "found_optimum"})

	evaluationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dsmga2",
		Name:      "evaluations_total",
		Help:      "Total fitness evaluations charged across completed runs, labeled by kind.",
	}, []string{"kind"})

	bestFitnessHist = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dsmga2",
		Name:      "best_fitness",
		Help:      "Distribution of best fitness achieved per completed run.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Collectors returns every metric this package registers, for a caller to
// pass to prometheus.Register (or a dedicated Registry) explicitly; the
// package never registers itself against the default registry so embedding
// it in a CLI that doesn't expose /metrics costs nothing.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{runsTotal, evaluationsTotal, bestFitnessHist}
}

func observeRunResult(result RunResult) {
	runsTotal.WithLabelValues(result.TerminatedWhy, boolLabel(result.FoundOptimum)).Inc()
	evaluationsTotal.WithLabelValues("nfe").Add(float64(result.NFE))
	evaluationsTotal.WithLabelValues("lsnfe").Add(float64(result.LSNFE))
	bestFitnessHist.Observe(result.BestFitness)
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
