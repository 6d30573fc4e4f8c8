package adapters

import (
	"context"

	"vocalize-lambda/application/ports/outbound"
)

type noopConversionAudit struct{}

// NewNoopConversionAudit stands in when no audit table is configured.
func NewNoopConversionAudit() outbound.ConversionAuditPort {
	return &noopConversionAudit{}
}

func (n *noopConversionAudit) Record(_ context.Context, _ outbound.ConversionRecord) error {
	return nil
}
