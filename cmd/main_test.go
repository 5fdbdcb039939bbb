package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/duynhne/bookstore-service/config"
)

func TestSetupTracingDisabled(t *testing.T) {
	cfg := config.Load()
	cfg.Tracing.Enabled = false

	tp := setupTracing(cfg, func(*config.Config) (*sdktrace.TracerProvider, error) {
		t.Fatal("init must not be called when tracing is disabled")
		return nil, nil
	})
	assert.Nil(t, tp)
}

func TestSetupTracingInitFailure(t *testing.T) {
	cfg := config.Load()
	cfg.Tracing.Enabled = true

	tp := setupTracing(cfg, func(*config.Config) (*sdktrace.TracerProvider, error) {
		return nil, errors.New("exporter unreachable")
	})

	// A plain nil, not a typed-nil provider wrapped in the interface:
	// the shutdown guard at exit must skip it.
	assert.True(t, tp == nil)
}

func TestSetupTracingSuccess(t *testing.T) {
	cfg := config.Load()
	cfg.Tracing.Enabled = true

	provider := sdktrace.NewTracerProvider()
	tp := setupTracing(cfg, func(*config.Config) (*sdktrace.TracerProvider, error) {
		return provider, nil
	})
	assert.NotNil(t, tp)
}
