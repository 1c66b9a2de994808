package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder("metrics_test")

	r.RecordRecord(ResultSuccess)
	r.RecordRecord(ResultSuccess)
	r.RecordRecord(ResultDuplicate)
	assert.Equal(t, 2.0, testutil.ToFloat64(importRecords.WithLabelValues("metrics_test", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(importRecords.WithLabelValues("metrics_test", ResultDuplicate)))

	r.RecordRun(OutcomeNoRecords, time.Second)
	assert.Equal(t, 1.0, testutil.ToFloat64(importRuns.WithLabelValues("metrics_test", OutcomeNoRecords)))

	r.RecordDropped(0)
	r.RecordDropped(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(droppedRecords.WithLabelValues("metrics_test")))

	done := r.Start()
	assert.Equal(t, 1.0, testutil.ToFloat64(importsInFlight.WithLabelValues("metrics_test")))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(importsInFlight.WithLabelValues("metrics_test")))
}
