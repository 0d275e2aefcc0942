package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStore_RecordsActionsAndEffects(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStore(reg)

	m.ActionDispatched("view_appeared")
	m.ActionDispatched("view_appeared")
	m.ActionDispatched("did_type_query")

	if got := testutil.ToFloat64(m.actions.WithLabelValues("view_appeared")); got != 2 {
		t.Fatalf("view_appeared count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.actions.WithLabelValues("did_type_query")); got != 1 {
		t.Fatalf("did_type_query count = %v, want 1", got)
	}

	m.EffectStarted()
	if got := testutil.ToFloat64(m.inflight); got != 1 {
		t.Fatalf("inflight = %v, want 1", got)
	}
	m.EffectFinished("top-genres", 20*time.Millisecond)
	if got := testutil.ToFloat64(m.inflight); got != 0 {
		t.Fatalf("inflight = %v, want 0", got)
	}
	if got := testutil.CollectAndCount(m.effectDuration); got != 1 {
		t.Fatalf("effect duration series = %d, want 1", got)
	}
}

func TestStore_NilIsNoop(t *testing.T) {
	var m *Store
	m.ActionDispatched("x")
	m.EffectStarted()
	m.EffectFinished("x", time.Second)
}

func TestNewStore_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewStore(reg)

	defer func() {
		if recover() == nil {
			t.Fatal("second NewStore on the same registry did not panic")
		}
	}()
	NewStore(reg)
}
