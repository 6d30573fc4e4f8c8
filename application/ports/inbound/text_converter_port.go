package inbound

import (
	"context"

	"vocalize-lambda/domain"
)

type ConvertTextParams struct {
	TextKey string
}

type TextConverterPort interface {
	Convert(ctx context.Context, params ConvertTextParams) (*domain.ConversionReport, error)
}
