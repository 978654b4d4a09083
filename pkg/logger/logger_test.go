package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetLoggerBeforeInit(t *testing.T) {
	if GetLogger() == nil {
		t.Fatal("expected a usable logger before InitLogger")
	}
}

func TestInitLoggerLevels(t *testing.T) {
	defer SetLogger(nil)

	for _, env := range []string{"production", "development"} {
		if err := InitLogger(&LogConfig{Level: "warn", Environment: env, ServiceName: "test"}); err != nil {
			t.Fatalf("%s: unexpected error: %v", env, err)
		}
		if GetLogger().Core().Enabled(zap.InfoLevel) {
			t.Errorf("%s: info should be disabled at warn level", env)
		}
		if !GetLogger().Core().Enabled(zap.WarnLevel) {
			t.Errorf("%s: warn should be enabled", env)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	l := zap.New(core)

	ctx := WithContext(context.Background(), l)
	if FromContext(ctx) != l {
		t.Error("expected logger stored in context")
	}
	if FromContext(context.Background()) != GetLogger() {
		t.Error("expected global logger for bare context")
	}
}

func TestMiddlewareLogsRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	e := echo.New()
	e.Use(Middleware())
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	entries := logs.FilterMessage("HTTP Request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 request log, got %d", len(entries))
	}
	if status := entries[0].ContextMap()["status"]; status != int64(http.StatusNotFound) {
		t.Errorf("expected logged status 404, got %v", status)
	}
}

func TestEchoContextCarriesRequestLogger(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	l := zap.New(core)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if FromContext(EchoContext(c)) != GetLogger() {
		t.Error("expected global logger when no request logger is set")
	}

	c.Set(EchoKey, l)
	if FromEcho(c) != l {
		t.Error("expected request logger from echo context")
	}
	if got, ok := Lookup(EchoContext(c)); !ok || got != l {
		t.Error("expected request logger in the request context")
	}
	if _, ok := Lookup(context.Background()); ok {
		t.Error("expected no logger in a bare context")
	}
}
