package handlers

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-lambda-go/events"

	"vocalize-lambda/application/ports/inbound"
	"vocalize-lambda/application/ports/outbound"
	"vocalize-lambda/domain"
)

type S3EventHandler interface {
	Handle(ctx context.Context, event events.S3Event) (domain.ConversionResult, error)
}

type s3EventHandler struct {
	logger    outbound.LoggerPort
	converter inbound.TextConverterPort
}

func NewS3EventHandler(logger outbound.LoggerPort, converter inbound.TextConverterPort) S3EventHandler {
	return &s3EventHandler{
		logger:    logger,
		converter: converter,
	}
}

// Handle never returns a non-nil error: every failure is logged with its
// cause and collapsed into the generic 500 result, so the platform does not
// retry the invocation.
func (h *s3EventHandler) Handle(ctx context.Context, event events.S3Event) (domain.ConversionResult, error) {
	if len(event.Records) == 0 {
		h.logger.Error(fmt.Errorf("event contained no records"), "Rejected S3 event")
		return domain.FailureResult(), nil
	}

	record := event.Records[0]

	// Keys in S3 event notifications arrive URL-encoded.
	textKey, err := url.QueryUnescape(record.S3.Object.Key)
	if err != nil {
		h.logger.ErrorWithFields(err, "Failed to decode object key from event", map[string]interface{}{
			"bucket": record.S3.Bucket.Name,
			"key":    record.S3.Object.Key,
		})
		return domain.FailureResult(), nil
	}

	h.logger.InfoWithFields("Received object created event", map[string]interface{}{
		"bucket": record.S3.Bucket.Name,
		"key":    textKey,
	})

	report, err := h.converter.Convert(ctx, inbound.ConvertTextParams{TextKey: textKey})
	if err != nil {
		h.logger.ErrorWithFields(err, "Conversion failed", map[string]interface{}{
			"bucket": record.S3.Bucket.Name,
			"key":    textKey,
			"kind":   string(domain.KindOf(err)),
		})
		return domain.FailureResult(), nil
	}

	h.logger.InfoWithFields("Conversion succeeded", map[string]interface{}{
		"key":         report.TextKey,
		"audio_key":   report.AudioKey,
		"audio_bytes": report.AudioBytes,
	})

	return domain.SuccessResult(), nil
}
