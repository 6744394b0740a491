package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.BookingCreated(100)
	m.BookingRejected("room_unavailable")
	m.BookingTransitioned("confirmed")
	m.ObserveHTTP("GET", "/health", 200, time.Millisecond)
}

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.BookingCreated(45000)
	m.BookingCreated(15000)
	m.BookingRejected("room_unavailable")
	m.BookingTransitioned("cancelled")
	m.ObserveHTTP("GET", "", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.BookingsCreated); got != 2 {
		t.Errorf("created = %v", got)
	}
	if got := testutil.ToFloat64(m.BookingRejections.WithLabelValues("room_unavailable")); got != 1 {
		t.Errorf("rejections = %v", got)
	}
	if got := testutil.ToFloat64(m.BookingTransitions.WithLabelValues("cancelled")); got != 1 {
		t.Errorf("transitions = %v", got)
	}
	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Errorf("unmatched route counter = %v", got)
	}
}

func TestNewPanicsOnDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	defer func() {
		if recover() == nil {
			t.Error("expected duplicate registration to panic")
		}
	}()
	New(reg)
}
