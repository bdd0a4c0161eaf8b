package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTranscodesTotalIncrements(t *testing.T) {
	c := TranscodesTotal.WithLabelValues("success")
	before := testutil.ToFloat64(c)
	c.Inc()
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("counter = %v, want %v", got, before+1)
	}
}

func TestInitializeMetrics(t *testing.T) {
	// Must not panic and must make all expected label combinations visible.
	InitializeMetrics()

	for _, status := range []string{"success", "error"} {
		if TranscodesTotal.WithLabelValues(status) == nil {
			t.Errorf("TranscodesTotal missing %q label", status)
		}
	}
	for _, kind := range []string{"full", "preview", "archive"} {
		if AssetsServed.WithLabelValues(kind) == nil {
			t.Errorf("AssetsServed missing %q label", kind)
		}
	}
}

func TestBuildGaugesExported(t *testing.T) {
	BuildDuration.Set(1.5)
	if got := testutil.ToFloat64(BuildDuration); got != 1.5 {
		t.Errorf("BuildDuration = %v, want 1.5", got)
	}

	BuildImagesScanned.Set(3)
	if got := testutil.ToFloat64(BuildImagesScanned); got != 3 {
		t.Errorf("BuildImagesScanned = %v, want 3", got)
	}
}
