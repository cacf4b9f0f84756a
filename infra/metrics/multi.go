package metrics

import (
	"errors"

	coremetrics "firedispatch/core/metrics"
)

// MultiSink fans records out to several sinks and joins their errors.
type MultiSink struct {
	sinks []coremetrics.PlanSink
}

// NewMultiSink combines sinks into one.
func NewMultiSink(sinks ...coremetrics.PlanSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordCycle forwards the record to every sink.
func (m *MultiSink) RecordCycle(stats coremetrics.CycleStats) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordCycle(stats); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
