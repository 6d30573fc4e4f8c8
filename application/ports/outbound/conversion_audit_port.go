package outbound

import (
	"context"
	"time"
)

type ConversionRecord struct {
	TextKey    string
	AudioKey   string
	AudioBytes int
	Outcome    string
	Duration   time.Duration
}

// ConversionAuditPort records one entry per invocation for operational
// inspection. Recording failures must never fail the conversion itself.
type ConversionAuditPort interface {
	Record(ctx context.Context, record ConversionRecord) error
}
