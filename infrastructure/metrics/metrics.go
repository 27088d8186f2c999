package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "forkledger"

// Metrics holds the chain store gauges and counters exported to prometheus
type Metrics struct {
	registry *prometheus.Registry

	BlocksAccepted      prometheus.Counter
	BlocksRejected      *prometheus.CounterVec
	bestHeight          prometheus.Gauge
	retainedBlocks      prometheus.Gauge
	pendingTransactions prometheus.Gauge
	blockProcessTime    prometheus.Histogram
}

// New creates the metrics and registers them in a fresh registry
func New() (*Metrics, error) {
	r := prometheus.NewRegistry()
	m := &Metrics{
		registry: r,
		BlocksAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_accepted_total",
			Help:      "number of blocks accepted into the chain store",
		}),
		BlocksRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_rejected_total",
			Help:      "number of rejected blocks by rejection reason",
		}, []string{"reason"}),
		bestHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_height",
			Help:      "height of the best block",
		}),
		retainedBlocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "retained_blocks",
			Help:      "number of blocks held in memory",
		}),
		pendingTransactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_transactions",
			Help:      "number of transactions in the pending pool",
		}),
		blockProcessTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "block_process_seconds",
			Help:      "time spent validating and inserting a block",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}

	for _, collector := range []prometheus.Collector{
		m.BlocksAccepted,
		m.BlocksRejected,
		m.bestHeight,
		m.retainedBlocks,
		m.pendingTransactions,
		m.blockProcessTime,
	} {
		err := r.Register(collector)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return m, nil
}

// Registry returns the registry holding every metric
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordBlock records the outcome of processing one block. reason is
// ignored for accepted blocks.
func (m *Metrics) RecordBlock(accepted bool, reason string, duration time.Duration) {
	m.blockProcessTime.Observe(duration.Seconds())
	if accepted {
		m.BlocksAccepted.Inc()
		return
	}
	m.BlocksRejected.WithLabelValues(reason).Inc()
}

// SetChainState updates the gauges describing the current chain store state
func (m *Metrics) SetChainState(bestHeight uint64, retainedBlocks int, pendingTransactions int) {
	m.bestHeight.Set(float64(bestHeight))
	m.retainedBlocks.Set(float64(retainedBlocks))
	m.pendingTransactions.Set(float64(pendingTransactions))
}

// Serve exposes the metrics over HTTP on listen until ctx is done
func (m *Metrics) Serve(ctx context.Context, listen string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.ListenAndServe()
	}()
	log.Infof("Serving metrics on %s", listen)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return errors.WithStack(server.Shutdown(shutdownCtx))
	case err := <-errChan:
		return errors.Wrapf(err, "metrics server on %s failed", listen)
	}
}
