package mock_collaborators

import (
	"context"
	"sync"

	"vocalize-lambda/application/ports/outbound"
)

// RecordingConversionAudit keeps every audit record in memory.
type RecordingConversionAudit struct {
	mu      sync.Mutex
	Err     error
	Records []outbound.ConversionRecord
}

func NewRecordingConversionAudit() *RecordingConversionAudit {
	return &RecordingConversionAudit{}
}

func (a *RecordingConversionAudit) Record(_ context.Context, record outbound.ConversionRecord) error {
	if a.Err != nil {
		return a.Err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.Records = append(a.Records, record)

	return nil
}

// LastRecord returns the most recent record, if any.
func (a *RecordingConversionAudit) LastRecord() (outbound.ConversionRecord, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.Records) == 0 {
		return outbound.ConversionRecord{}, false
	}

	return a.Records[len(a.Records)-1], true
}

var _ outbound.ConversionAuditPort = (*RecordingConversionAudit)(nil)
