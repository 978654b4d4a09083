package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveBeforeInitIsNoop(t *testing.T) {
	if HttpRequestsTotal != nil {
		t.Skip("metrics already initialised by another test")
	}
	ObserveHTTP("GET", "/", 200, time.Millisecond)
	ObserveUpstream("list", 0, time.Millisecond)
	ObserveSubmission("created")
	ObserveStore("list", time.Millisecond)
}

func TestInitMetricsIsIdempotent(t *testing.T) {
	InitMetrics("test_console")
	InitMetrics("test_console")

	ObserveUpstream("create", 0, time.Millisecond)
	ObserveUpstream("create", 201, time.Millisecond)
	ObserveSubmission("invalid")

	if got := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("create", "error")); got != 1 {
		t.Errorf("expected 1 failed create, got %v", got)
	}
	if got := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("create", "201")); got != 1 {
		t.Errorf("expected 1 created, got %v", got)
	}
	if got := testutil.ToFloat64(SubmissionsCounter.WithLabelValues("invalid")); got != 1 {
		t.Errorf("expected 1 invalid submission, got %v", got)
	}
}
