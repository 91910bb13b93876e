// Command mhz19-exporter polls a single MH-Z19 CO2 sensor over a
// serial line and exposes the readings as Prometheus metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/aranoy15/go-mhz19/mhz19"
	"github.com/aranoy15/go-mhz19/protocol"
	"github.com/aranoy15/go-mhz19/serialport"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional; env vars with prefix MHZ19_ also apply)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := newLogger(cfg.Logging)
	defer func() { _ = log.Sync() }()

	port, err := serialport.Open(cfg.Serial.Device)
	if err != nil {
		log.Fatal("open serial device", zap.String("device", cfg.Serial.Device), zap.Error(err))
	}
	defer port.Close()

	sensor := mhz19.New(port, mhz19.WithLogger(&driverLogger{log: log.Sugar()}))

	if err := applySensorConfig(sensor, cfg.Sensor, log); err != nil {
		log.Fatal("sensor setup", zap.Error(err))
	}

	reg := newRegistry()
	metrics := newSensorMetrics(reg)

	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: mux}
	go func() {
		log.Info("metrics listening", zap.String("addr", cfg.HTTP.Addr), zap.String("path", cfg.Metrics.Path))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go poll(ctx, sensor, cfg.Poll.Interval, metrics, log)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
}

// applySensorConfig runs the one-shot setup commands from config:
// detection range and automatic baseline correction.
func applySensorConfig(sensor *mhz19.Sensor, cfg SensorConfig, log *zap.Logger) error {
	if cfg.Range != 0 {
		if err := sensor.SetRange(protocol.Range(cfg.Range)); err != nil {
			return fmt.Errorf("set range: %w", err)
		}
		log.Info("detection range configured", zap.Uint16("range_ppm", cfg.Range))
	}

	switch cfg.AutoCalibration {
	case "enable":
		if err := sensor.SetAutoCalibration(protocol.AutoCalibrationEnable); err != nil {
			return fmt.Errorf("enable auto calibration: %w", err)
		}
	case "disable":
		if err := sensor.SetAutoCalibration(protocol.AutoCalibrationDisable); err != nil {
			return fmt.Errorf("disable auto calibration: %w", err)
		}
	}

	return nil
}
