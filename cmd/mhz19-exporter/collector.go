package main

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/aranoy15/go-mhz19/mhz19"
	"github.com/aranoy15/go-mhz19/protocol"
)

// co2Reader is the slice of the driver the poll loop needs; it lets
// tests substitute a fake without a transport.
type co2Reader interface {
	ReadConcentration() (uint16, error)
}

// sensorMetrics holds the exporter's Prometheus instruments.
type sensorMetrics struct {
	co2        prometheus.Gauge
	reads      prometheus.Counter
	readErrors *prometheus.CounterVec
}

// newRegistry creates the exporter registry with the standard process
// and Go collectors registered.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// newSensorMetrics registers and returns the sensor instruments.
func newSensorMetrics(reg prometheus.Registerer) *sensorMetrics {
	m := &sensorMetrics{
		co2: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mhz19_co2_ppm",
			Help: "Last CO2 concentration reading in ppm.",
		}),
		reads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mhz19_reads_total",
			Help: "Total successful concentration reads.",
		}),
		readErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mhz19_read_errors_total",
			Help: "Failed concentration reads by error kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.co2, m.reads, m.readErrors)
	return m
}

// errorKind maps a driver error to its metrics label: one of the three
// transaction error classes, or "unknown" for anything else.
func errorKind(err error) string {
	var writeErr *mhz19.WriteError
	var readErr *mhz19.ReadError
	var csErr *protocol.ChecksumError

	switch {
	case errors.As(err, &writeErr):
		return "write"
	case errors.As(err, &readErr):
		return "read"
	case errors.As(err, &csErr):
		return "checksum"
	default:
		return "unknown"
	}
}

// poll reads the sensor once per interval until the context is
// cancelled, recording each outcome. A stuck read blocks the loop:
// the driver has no timeout, and issuing another command on the
// half-duplex line mid-transaction would desynchronize the frame
// stream.
func poll(ctx context.Context, sensor co2Reader, interval time.Duration, m *sensorMetrics, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ppm, err := sensor.ReadConcentration()
		if err != nil {
			kind := errorKind(err)
			m.readErrors.WithLabelValues(kind).Inc()
			log.Warn("concentration read failed", zap.String("kind", kind), zap.Error(err))
		} else {
			m.co2.Set(float64(ppm))
			m.reads.Inc()
			log.Debug("concentration read", zap.Uint16("ppm", ppm))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
